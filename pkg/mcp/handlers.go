package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"chromactl/pkg/color"
	"chromactl/pkg/device"
	"chromactl/pkg/effect"
	"chromactl/pkg/profile"
)

func (s *Server) handleScanDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	descs := s.registry.ScanAll(ctx)

	infos := make([]DeviceInfo, 0, len(descs))
	for _, d := range descs {
		infos = append(infos, DescriptorToInfo(d))
	}

	out := ScanDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	descs := s.registry.Devices()

	infos := make([]DeviceInfo, 0, len(descs))
	for _, d := range descs {
		infos = append(infos, DescriptorToInfo(d))
	}

	out := ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleApplySettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys, err := requiredStringSlice(request, "devices")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings, err := settingsFromArgs(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rep, err := s.registry.Apply(ctx, keys, settings)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to apply settings: %s", err)), nil
	}

	ok := rep.Succeeded()
	out := ApplyOutput{
		Results:   rep,
		Succeeded: ok,
		Failed:    len(rep) - ok,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleApplyToAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	settings, err := settingsFromArgs(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rep, err := s.registry.ApplyAll(ctx, settings)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to apply settings: %s", err)), nil
	}

	ok := rep.Succeeded()
	out := ApplyOutput{
		Results:   rep,
		Succeeded: ok,
		Failed:    len(rep) - ok,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTurnOffAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := TurnOffAllOutput{
		Backends: s.registry.TurnOffAll(ctx),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListEffects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := ListEffectsOutput{Effects: effect.Canonical()}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSaveProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings, err := settingsFromArgs(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	keys, _ := stringSlice(request, "devices")

	if err := s.profiles.Save(name, settings, keys); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save profile: %s", err)), nil
	}

	out := SaveProfileOutput{
		Success: true,
		Message: fmt.Sprintf("Profile %q saved", name),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleApplyProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.profiles.Load(name)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("profile %q not found", name)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load profile: %s", err)), nil
	}

	rep, err := s.registry.Apply(ctx, p.SelectedDevices, p.Settings())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to apply profile: %s", err)), nil
	}

	ok := rep.Succeeded()
	out := ApplyOutput{
		Results:   rep,
		Succeeded: ok,
		Failed:    len(rep) - ok,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListProfiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := s.profiles.List()

	infos := make([]ProfileInfo, 0, len(names))
	for _, name := range names {
		p, err := s.profiles.Load(name)
		if err != nil {
			continue
		}
		infos = append(infos, ProfileInfo{
			Name:            name,
			Color:           p.Color.Hex(),
			Effect:          p.Effect,
			Brightness:      p.Brightness,
			Speed:           p.Speed,
			SelectedDevices: p.SelectedDevices,
			Created:         p.Created.UTC().Format(time.RFC3339),
		})
	}

	out := ListProfilesOutput{
		Profiles: infos,
		Count:    len(infos),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleDeleteProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	removed, err := s.profiles.Delete(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete profile: %s", err)), nil
	}
	if !removed {
		return mcp.NewToolResultError(fmt.Sprintf("profile %q not found", name)), nil
	}

	out := DeleteProfileOutput{
		Success: true,
		Message: fmt.Sprintf("Profile %q deleted", name),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

// settingsFromArgs builds a settings value from the shared color/effect/
// brightness/speed tool arguments. Brightness defaults to 100, speed to 50.
func settingsFromArgs(request mcp.CallToolRequest) (device.Settings, error) {
	hex, err := requiredString(request, "color")
	if err != nil {
		return device.Settings{}, err
	}
	c, err := color.ParseHex(hex)
	if err != nil {
		return device.Settings{}, fmt.Errorf("invalid color: %w", err)
	}
	name, err := requiredString(request, "effect")
	if err != nil {
		return device.Settings{}, err
	}

	s := device.Settings{
		Color:      c,
		Effect:     name,
		Brightness: 100,
		Speed:      50,
	}
	args := request.GetArguments()
	if b, ok := args["brightness"].(float64); ok {
		s.Brightness = int(b)
	}
	if sp, ok := args["speed"].(float64); ok {
		s.Speed = int(sp)
	}
	return s, nil
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func stringSlice(request mcp.CallToolRequest, key string) ([]string, error) {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("parameter %q is missing", key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("parameter %q must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("parameter %q must contain only strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

func requiredStringSlice(request mcp.CallToolRequest, key string) ([]string, error) {
	out, err := stringSlice(request, key)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parameter %q must not be empty", key)
	}
	return out, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
