package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Scan for devices
	s.mcpServer.AddTool(
		mcp.NewTool("scan_devices",
			mcp.WithDescription("Scan every lighting backend and refresh the device snapshot"),
		),
		s.handleScanDevices,
	)

	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List the RGB devices found by the most recent scan"),
		),
		s.handleListDevices,
	)

	// Apply settings
	s.mcpServer.AddTool(
		mcp.NewTool("apply_settings",
			mcp.WithDescription("Apply a color, effect, brightness and speed to selected devices. Outcomes are reported per device."),
			mcp.WithArray("devices",
				mcp.Required(),
				mcp.Description("Device keys to target (e.g. [\"razer\", \"msi\"]). Use list_devices for valid keys."),
			),
			mcp.WithString("color",
				mcp.Required(),
				mcp.Description("Hex color like #ff0080"),
			),
			mcp.WithString("effect",
				mcp.Required(),
				mcp.Description("Effect name: static, breathing, wave, rainbow, spectrum_cycle, reactive, comet or flash"),
			),
			mcp.WithNumber("brightness",
				mcp.Description("Brightness percent 0-100 (default 100)"),
			),
			mcp.WithNumber("speed",
				mcp.Description("Animation speed 1-100 (default 50)"),
			),
		),
		s.handleApplySettings,
	)

	// Apply to everything
	s.mcpServer.AddTool(
		mcp.NewTool("apply_to_all",
			mcp.WithDescription("Apply a color, effect, brightness and speed to every device in the last scan"),
			mcp.WithString("color",
				mcp.Required(),
				mcp.Description("Hex color like #ff0080"),
			),
			mcp.WithString("effect",
				mcp.Required(),
				mcp.Description("Effect name: static, breathing, wave, rainbow, spectrum_cycle, reactive, comet or flash"),
			),
			mcp.WithNumber("brightness",
				mcp.Description("Brightness percent 0-100 (default 100)"),
			),
			mcp.WithNumber("speed",
				mcp.Description("Animation speed 1-100 (default 50)"),
			),
		),
		s.handleApplyToAll,
	)

	// Turn everything off
	s.mcpServer.AddTool(
		mcp.NewTool("turn_off_all",
			mcp.WithDescription("Turn off lighting on every backend"),
		),
		s.handleTurnOffAll,
	)

	// List effects
	s.mcpServer.AddTool(
		mcp.NewTool("list_effects",
			mcp.WithDescription("List the effect names accepted by apply_settings and profiles"),
		),
		s.handleListEffects,
	)

	// Save profile
	s.mcpServer.AddTool(
		mcp.NewTool("save_profile",
			mcp.WithDescription("Save the given settings and device selection as a named profile"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Profile name"),
			),
			mcp.WithString("color",
				mcp.Required(),
				mcp.Description("Hex color like #00ff80"),
			),
			mcp.WithString("effect",
				mcp.Required(),
				mcp.Description("Effect name: static, breathing, wave, rainbow, spectrum_cycle, reactive, comet or flash"),
			),
			mcp.WithNumber("brightness",
				mcp.Description("Brightness percent 0-100 (default 100)"),
			),
			mcp.WithNumber("speed",
				mcp.Description("Animation speed 1-100 (default 50)"),
			),
			mcp.WithArray("devices",
				mcp.Description("Device keys the profile targets"),
			),
		),
		s.handleSaveProfile,
	)

	// Apply profile
	s.mcpServer.AddTool(
		mcp.NewTool("apply_profile",
			mcp.WithDescription("Load a saved profile and apply it to its selected devices"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Profile name"),
			),
		),
		s.handleApplyProfile,
	)

	// List profiles
	s.mcpServer.AddTool(
		mcp.NewTool("list_profiles",
			mcp.WithDescription("List all saved lighting profiles"),
		),
		s.handleListProfiles,
	)

	// Delete profile
	s.mcpServer.AddTool(
		mcp.NewTool("delete_profile",
			mcp.WithDescription("Delete a saved lighting profile"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Profile name"),
			),
		),
		s.handleDeleteProfile,
	)
}
