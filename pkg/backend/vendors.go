package backend

import (
	"chromactl/pkg/device"
	"chromactl/pkg/effect"
)

// Install paths probed for each vendor control utility. Overridable in the
// constructors for testing and non-standard installs.
var (
	lianLiPaths = []string{
		`C:\Program Files (x86)\Lian Li\L-Connect 3\L-Connect 3.exe`,
		`C:\Program Files\Lian Li\L-Connect 3\L-Connect 3.exe`,
		`C:\Program Files (x86)\Lian Li\L-Connect\L-Connect.exe`,
		`C:\Program Files\Lian Li\L-Connect\L-Connect.exe`,
	}
	msiPaths = []string{
		`C:\Program Files (x86)\MSI\One Dragon Center\Mystic Light\MysticLight.exe`,
		`C:\Program Files\MSI\MSI Center\Mystic Light\MysticLight.exe`,
	}
	gskillPaths = []string{
		`C:\Program Files (x86)\ASUS\AURA\AuraSyncSvcWrap.exe`,
		`C:\Program Files\ASUS\AURA\AuraSyncSvcWrap.exe`,
		`C:\Program Files (x86)\G.SKILL\G.SKILL Trident Z Lighting Control\G.SKILL Trident Z Lighting Control.exe`,
		`C:\Program Files\G.SKILL\G.SKILL Trident Z Lighting Control\G.SKILL Trident Z Lighting Control.exe`,
	}
	asrockPaths = []string{
		`C:\Program Files (x86)\ASRock Utility\ASRRGBLED\Bin\ASRRGBLED.exe`,
		`C:\Program Files\ASRock Utility\ASRRGBLED\Bin\ASRRGBLED.exe`,
	}
)

func newProbed(name string, paths []string, effects []string, desc device.Descriptor) device.Controller {
	desc.Backend = name
	desc.Effects = effects
	return &probed{
		name:    name,
		paths:   paths,
		effects: effects,
		descriptor: func(string) device.Descriptor {
			return desc
		},
	}
}

// NewLianLi controls Lian Li Strimmer cables through the L-Connect utility.
func NewLianLi(paths ...string) device.Controller {
	if len(paths) == 0 {
		paths = lianLiPaths
	}
	return newProbed("lian_li", paths,
		[]string{effect.Static, effect.Breathing, effect.Rainbow, effect.Wave, effect.SpectrumCycle, effect.Comet},
		device.Descriptor{
			Key:      "lian_li",
			Name:     "Lian Li Strimmer Plus (24-pin + 8-pin PCIe)",
			Category: device.CategoryCable,
			Zones:    2,
		})
}

// NewMSI controls MSI motherboard zones through Mystic Light.
func NewMSI(paths ...string) device.Controller {
	if len(paths) == 0 {
		paths = msiPaths
	}
	return newProbed("msi", paths,
		[]string{effect.Static, effect.Breathing, effect.Wave, effect.Rainbow, effect.SpectrumCycle, effect.Reactive, effect.Flash, effect.Comet},
		device.Descriptor{
			Key:      "msi",
			Name:     "MSI Motherboard (Mystic Light)",
			Category: device.CategoryMotherboard,
			// CPU socket, RAM slots, PCIe, I/O shroud, chipset, edge strip
			// and two ARGB headers.
			Zones: 8,
		})
}

// NewGSkill controls G.Skill AURA RGB RAM through Aura Sync or the Trident Z
// utility.
func NewGSkill(paths ...string) device.Controller {
	if len(paths) == 0 {
		paths = gskillPaths
	}
	return newProbed("gskill", paths,
		[]string{effect.Static, effect.Breathing, effect.Wave, effect.Rainbow, effect.SpectrumCycle, effect.Flash},
		device.Descriptor{
			Key:      "gskill",
			Name:     "G.Skill AURA RGB RAM",
			Category: device.CategoryRAM,
			// Two zones per DIMM, two DIMMs assumed.
			Zones: 4,
		})
}

// NewASRock controls the Phantom Gaming GPU through the ASRock RGB utility.
func NewASRock(paths ...string) device.Controller {
	if len(paths) == 0 {
		paths = asrockPaths
	}
	return newProbed("asrock", paths,
		[]string{effect.Static, effect.Breathing, effect.Wave, effect.Rainbow, effect.SpectrumCycle, effect.Reactive, effect.Comet, effect.Flash},
		device.Descriptor{
			Key:      "asrock",
			Name:     "ASRock Phantom Gaming RX 7900XTX",
			Category: device.CategoryGPU,
			// Logo, fan shroud, backplate.
			Zones: 3,
		})
}
