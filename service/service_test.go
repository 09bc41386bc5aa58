package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/viant/afs"
)

func uploadFixture(t *testing.T, location, content string) {
	t.Helper()
	if err := afs.New().Upload(context.Background(), location, 0o644, strings.NewReader(content)); err != nil {
		t.Fatalf("failed to upload fixture %s: %v", location, err)
	}
}

func downloadFixture(t *testing.T, location string) []byte {
	t.Helper()
	data, err := afs.New().DownloadWithURL(context.Background(), location)
	if err != nil {
		t.Fatalf("failed to download %s: %v", location, err)
	}
	return data
}

func TestServicePatchFile(t *testing.T) {
	ctx := context.Background()
	location := "mem://localhost/uniffi-patch/patch/walletkit.swift"
	uploadFixture(t, location, oldDocument(Interfaces))

	svc := NewService(nil)
	out, err := svc.PatchFile(ctx, &PatchFileInput{Location: location})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Patched != len(Interfaces) {
		t.Fatalf("expected %d patched interfaces, got %d", len(Interfaces), out.Patched)
	}
	text := string(downloadFixture(t, location))
	for _, iface := range Interfaces {
		if strings.Contains(text, oldDeclaration(iface)) {
			t.Fatalf("%s: old declaration written back", iface.Name)
		}
		if !strings.Contains(text, newDeclaration(iface)) {
			t.Fatalf("%s: new declaration missing on disk", iface.Name)
		}
	}

	// A second run must refuse to double patch.
	if _, err := svc.PatchFile(ctx, &PatchFileInput{Location: location}); !errors.Is(err, ErrNoPatterns) {
		t.Fatalf("expected ErrNoPatterns on second run, got %v", err)
	}
}

func TestServicePatchFileLeavesFailuresUntouched(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)

	testCases := []struct {
		name     string
		content  string
		expected func(error) bool
	}{
		{
			name:     "unrelated file",
			content:  "import Foundation\n\nfunc unrelated() {}\n",
			expected: func(err error) bool { return errors.Is(err, ErrNoPatterns) },
		},
		{
			name:    "partial match",
			content: oldDocument(Interfaces[2:]),
			expected: func(err error) bool {
				var partial *PartialPatchError
				return errors.As(err, &partial)
			},
		},
		{
			name: "tampered trailer",
			content: strings.Replace(oldDocument(Interfaces),
				oldTrailer(Interfaces[0]), "    )]\n}\n\n// hand edited\n", 1),
			expected: func(err error) bool {
				var mismatch *StructuralMismatchError
				return errors.As(err, &mismatch)
			},
		},
	}

	for _, tc := range testCases {
		location := "mem://localhost/uniffi-patch/untouched/" + strings.ReplaceAll(tc.name, " ", "-") + ".swift"
		uploadFixture(t, location, tc.content)
		_, err := svc.PatchFile(ctx, &PatchFileInput{Location: location})
		if !tc.expected(err) {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !bytes.Equal(downloadFixture(t, location), []byte(tc.content)) {
			t.Fatalf("%s: file modified despite failure", tc.name)
		}
	}
}

func TestServicePatchFileDryRun(t *testing.T) {
	ctx := context.Background()
	location := "mem://localhost/uniffi-patch/dryrun/walletkit.swift"
	content := oldDocument(Interfaces)
	uploadFixture(t, location, content)

	svc := NewService(&Config{DryRun: true})
	out, err := svc.PatchFile(ctx, &PatchFileInput{Location: location})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.DryRun {
		t.Fatal("expected dry run output")
	}
	if out.Patched != len(Interfaces) {
		t.Fatalf("expected %d patched interfaces, got %d", len(Interfaces), out.Patched)
	}
	if !bytes.Equal(downloadFixture(t, location), []byte(content)) {
		t.Fatal("dry run modified the file")
	}
}

func TestServicePatchFileNotFound(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.PatchFile(context.Background(), &PatchFileInput{Location: "mem://localhost/uniffi-patch/missing.swift"})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestServiceInspectFile(t *testing.T) {
	ctx := context.Background()
	location := "mem://localhost/uniffi-patch/inspect/walletkit.swift"
	// Logger still unpatched, AtomicBlobStore already rewritten, the rest absent.
	patchedBlob, _, err := patchInterface(oldInterfaceBlock(Interfaces[0]), Interfaces[0])
	if err != nil {
		t.Fatalf("failed to build patched block: %v", err)
	}
	uploadFixture(t, location, patchedBlob+"\n"+oldInterfaceBlock(Interfaces[2]))

	svc := NewService(nil)
	out, err := svc.InspectFile(ctx, &InspectFileInput{Location: location})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := map[string]string{
		"AtomicBlobStore": StatePatched,
		"DeviceKeystore":  StateAbsent,
		"Logger":          StateUnpatched,
		"StorageProvider": StateAbsent,
	}
	if len(out.Interfaces) != len(expected) {
		t.Fatalf("expected %d interface states, got %d", len(expected), len(out.Interfaces))
	}
	for _, state := range out.Interfaces {
		if expected[state.Name] != state.State {
			t.Fatalf("%s: expected %s, got %s", state.Name, expected[state.Name], state.State)
		}
	}
}
