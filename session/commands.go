package session

import (
	"context"

	"github.com/esphome-go/api/api"
	"github.com/esphome-go/api/entity"
)

// Per-kind command methods. Each <Kind>Command sends req to a single
// target, setting req.Key itself so callers never have to. Each
// <Kind>CommandGlobal broadcasts req to every non-Config, non-Diagnostic
// entity of that kind, in catalogue declaration order (spec.md §4.5:
// "global broadcast targets only entities of category none").

func (s *Session) commandGlobal(ctx context.Context, keys []uint32, send func(ctx context.Context, key uint32) error) error {
	for _, key := range keys {
		if err := send(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// CoverCommand sends req to a single cover, after setting its Key.
func (s *Session) CoverCommand(ctx context.Context, key uint32, req *api.CoverCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

// CoverCommandGlobal sends req to every category-None cover.
func (s *Session) CoverCommandGlobal(ctx context.Context, req api.CoverCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindCover), func(ctx context.Context, key uint32) error {
		r := req
		return s.CoverCommand(ctx, key, &r)
	})
}

func (s *Session) FanCommand(ctx context.Context, key uint32, req *api.FanCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) FanCommandGlobal(ctx context.Context, req api.FanCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindFan), func(ctx context.Context, key uint32) error {
		r := req
		return s.FanCommand(ctx, key, &r)
	})
}

func (s *Session) LightCommand(ctx context.Context, key uint32, req *api.LightCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) LightCommandGlobal(ctx context.Context, req api.LightCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindLight), func(ctx context.Context, key uint32) error {
		r := req
		return s.LightCommand(ctx, key, &r)
	})
}

func (s *Session) SwitchCommand(ctx context.Context, key uint32, req *api.SwitchCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) SwitchCommandGlobal(ctx context.Context, req api.SwitchCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindSwitch), func(ctx context.Context, key uint32) error {
		r := req
		return s.SwitchCommand(ctx, key, &r)
	})
}

func (s *Session) ClimateCommand(ctx context.Context, key uint32, req *api.ClimateCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) ClimateCommandGlobal(ctx context.Context, req api.ClimateCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindClimate), func(ctx context.Context, key uint32) error {
		r := req
		return s.ClimateCommand(ctx, key, &r)
	})
}

func (s *Session) NumberCommand(ctx context.Context, key uint32, req *api.NumberCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) NumberCommandGlobal(ctx context.Context, req api.NumberCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindNumber), func(ctx context.Context, key uint32) error {
		r := req
		return s.NumberCommand(ctx, key, &r)
	})
}

func (s *Session) SelectCommand(ctx context.Context, key uint32, req *api.SelectCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) SelectCommandGlobal(ctx context.Context, req api.SelectCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindSelect), func(ctx context.Context, key uint32) error {
		r := req
		return s.SelectCommand(ctx, key, &r)
	})
}

func (s *Session) SirenCommand(ctx context.Context, key uint32, req *api.SirenCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) SirenCommandGlobal(ctx context.Context, req api.SirenCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindSiren), func(ctx context.Context, key uint32) error {
		r := req
		return s.SirenCommand(ctx, key, &r)
	})
}

func (s *Session) LockCommand(ctx context.Context, key uint32, req *api.LockCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) LockCommandGlobal(ctx context.Context, req api.LockCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindLock), func(ctx context.Context, key uint32) error {
		r := req
		return s.LockCommand(ctx, key, &r)
	})
}

// ButtonCommand presses a single button.
func (s *Session) ButtonCommand(ctx context.Context, key uint32) error {
	return s.sendCommand(ctx, &api.ButtonCommandRequest{Key: key})
}

// ButtonCommandGlobal presses every category-None button.
func (s *Session) ButtonCommandGlobal(ctx context.Context) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindButton), func(ctx context.Context, key uint32) error {
		return s.ButtonCommand(ctx, key)
	})
}

func (s *Session) MediaPlayerCommand(ctx context.Context, key uint32, req *api.MediaPlayerCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) MediaPlayerCommandGlobal(ctx context.Context, req api.MediaPlayerCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindMediaPlayer), func(ctx context.Context, key uint32) error {
		r := req
		return s.MediaPlayerCommand(ctx, key, &r)
	})
}

func (s *Session) AlarmControlPanelCommand(ctx context.Context, key uint32, req *api.AlarmControlPanelCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) AlarmControlPanelCommandGlobal(ctx context.Context, req api.AlarmControlPanelCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindAlarmControlPanel), func(ctx context.Context, key uint32) error {
		r := req
		return s.AlarmControlPanelCommand(ctx, key, &r)
	})
}

func (s *Session) TextCommand(ctx context.Context, key uint32, req *api.TextCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) TextCommandGlobal(ctx context.Context, req api.TextCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindText), func(ctx context.Context, key uint32) error {
		r := req
		return s.TextCommand(ctx, key, &r)
	})
}

func (s *Session) DateCommand(ctx context.Context, key uint32, req *api.DateCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) DateCommandGlobal(ctx context.Context, req api.DateCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindDate), func(ctx context.Context, key uint32) error {
		r := req
		return s.DateCommand(ctx, key, &r)
	})
}

func (s *Session) TimeCommand(ctx context.Context, key uint32, req *api.TimeCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) TimeCommandGlobal(ctx context.Context, req api.TimeCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindTime), func(ctx context.Context, key uint32) error {
		r := req
		return s.TimeCommand(ctx, key, &r)
	})
}

func (s *Session) DateTimeCommand(ctx context.Context, key uint32, req *api.DateTimeCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) DateTimeCommandGlobal(ctx context.Context, req api.DateTimeCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindDateTime), func(ctx context.Context, key uint32) error {
		r := req
		return s.DateTimeCommand(ctx, key, &r)
	})
}

func (s *Session) ValveCommand(ctx context.Context, key uint32, req *api.ValveCommandRequest) error {
	req.Key = key
	return s.sendCommand(ctx, req)
}

func (s *Session) ValveCommandGlobal(ctx context.Context, req api.ValveCommandRequest) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindValve), func(ctx context.Context, key uint32) error {
		r := req
		return s.ValveCommand(ctx, key, &r)
	})
}

// UpdateCommand issues an update action (install/check/defer) to a single
// update entity.
func (s *Session) UpdateCommand(ctx context.Context, key uint32, command int32) error {
	return s.sendCommand(ctx, &api.UpdateCommandRequest{Key: key, Command: command})
}

// UpdateCommandGlobal issues command to every category-None update entity.
func (s *Session) UpdateCommandGlobal(ctx context.Context, command int32) error {
	return s.commandGlobal(ctx, s.catalogue.PrimaryKeysForKind(entity.KindUpdate), func(ctx context.Context, key uint32) error {
		return s.UpdateCommand(ctx, key, command)
	})
}
