package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
)

// Service applies the vtable rewrite to files addressed by path or AFS URL.
type Service struct {
	fs      afs.Service
	dryRun  bool
	useText bool
}

func NewService(cfg *Config) *Service {
	if cfg == nil {
		cfg = &Config{}
	}
	useText := !cfg.UseData
	if cfg.UseText {
		useText = true
	}
	return &Service{fs: afs.New(), dryRun: cfg.DryRun, useText: useText}
}

func (s *Service) UseTextField() bool { return s.useText }

// PatchFile reads the bindings file, patches every known callback interface
// and writes the result back to the same location. The write is the single
// commit step: any failure leaves the file untouched on disk.
func (s *Service) PatchFile(ctx context.Context, in *PatchFileInput) (*PatchFileOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", location, err)
	}
	if !exists {
		return nil, fmt.Errorf("swift file not found: %s", location)
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}
	patched, count, err := PatchDocument(string(data))
	if err != nil {
		return nil, fmt.Errorf("patching %s: %w", location, err)
	}
	dryRun := in.DryRun || s.dryRun
	if !dryRun {
		if err := s.fs.Upload(ctx, location, 0o644, strings.NewReader(patched)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", location, err)
		}
	}
	return &PatchFileOutput{Location: location, Patched: count, DryRun: dryRun}, nil
}

// InspectFile reports the per-interface state of a bindings file without
// modifying it. It distinguishes an already patched file from one the
// generator formatted differently, which PatchFile alone cannot.
func (s *Service) InspectFile(ctx context.Context, in *InspectFileInput) (*InspectFileOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", location, err)
	}
	if !exists {
		return nil, fmt.Errorf("swift file not found: %s", location)
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}
	text := string(data)
	out := &InspectFileOutput{Location: location}
	for _, iface := range Interfaces {
		state := StateAbsent
		switch {
		case strings.Contains(text, oldDeclaration(iface)):
			state = StateUnpatched
		case strings.Contains(text, newDeclaration(iface)):
			state = StatePatched
		}
		out.Interfaces = append(out.Interfaces, InterfaceState{Name: iface.Name, State: state})
	}
	return out, nil
}
