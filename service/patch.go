// Package service rewrites callback vtable initialization in UniFFI-generated
// Swift bindings. UniFFI emits each vtable as a one-element array
// `[VTableType] = [VTableType(...)]`; on newer Apple toolchains with ASan
// enabled that pattern can trigger a heap-buffer-overflow during static
// initialization. The rewrite matches the upstream fix from
// https://github.com/mozilla/uniffi-rs/pull/2821 and stays a downstream
// workaround until that change ships in a UniFFI release.
//
// Matching is exact substring matching against the generator's output, with
// no whitespace normalization. A reformatted generator (different
// indentation, reordered members) makes every interface report "not found"
// rather than a clearer diagnostic; InspectFile helps a human tell that case
// apart from an already patched file.
package service

import "strings"

func oldDeclaration(iface CallbackInterface) string {
	return "    static let vtable: [" + iface.VTableType + "] = [" + iface.VTableType + "("
}

func newDeclaration(iface CallbackInterface) string {
	return "    static let vtable: " + iface.VTableType + " = " + iface.VTableType + "("
}

func oldTrailer(iface CallbackInterface) string {
	return "    )]\n" +
		"}\n\n" +
		"private func uniffiCallbackInit" + iface.Name + "() {\n" +
		"    " + iface.InitFn + "(UniffiCallbackInterface" + iface.Name + ".vtable)\n" +
		"}\n"
}

func newTrailer(iface CallbackInterface) string {
	return "    )\n" +
		"\n" +
		"    // Rust stores this pointer for future callback invocations, so it must live\n" +
		"    // for the process lifetime (not just for the init function call).\n" +
		"    static let vtablePtr: UnsafePointer<" + iface.VTableType + "> = {\n" +
		"        let ptr = UnsafeMutablePointer<" + iface.VTableType + ">.allocate(capacity: 1)\n" +
		"        ptr.initialize(to: vtable)\n" +
		"        return UnsafePointer(ptr)\n" +
		"    }()\n" +
		"}\n\n" +
		"private func uniffiCallbackInit" + iface.Name + "() {\n" +
		"    " + iface.InitFn + "(UniffiCallbackInterface" + iface.Name + ".vtablePtr)\n" +
		"}\n"
}

// patchInterface rewrites the vtable block of a single callback interface.
// When the old declaration is absent the text is returned unchanged with
// ok=false; the document may already be patched or may not apply. When the
// declaration matched but the trailing block did not, the generator template
// no longer matches what this package expects and patching must abort.
func patchInterface(text string, iface CallbackInterface) (string, bool, error) {
	oldDecl := oldDeclaration(iface)
	if !strings.Contains(text, oldDecl) {
		return text, false, nil
	}
	text = strings.Replace(text, oldDecl, newDeclaration(iface), 1)

	oldTail := oldTrailer(iface)
	if !strings.Contains(text, oldTail) {
		return "", false, &StructuralMismatchError{Interface: iface.Name}
	}
	return strings.Replace(text, oldTail, newTrailer(iface), 1), true, nil
}

// PatchDocument applies the vtable rewrite for every known callback interface
// and enforces all-or-nothing semantics: all interfaces patch, or the input
// is rejected. A partial match would leave some callback interfaces in the
// old unsafe form while others are fixed, so it fails harder than no match
// at all. The returned count always equals len(Interfaces) on success.
func PatchDocument(text string) (string, int, error) {
	patched := 0
	for _, iface := range Interfaces {
		next, ok, err := patchInterface(text, iface)
		if err != nil {
			return "", 0, err
		}
		if ok {
			patched++
		}
		text = next
	}
	if patched == 0 {
		return "", 0, ErrNoPatterns
	}
	if patched != len(Interfaces) {
		return "", 0, &PartialPatchError{Patched: patched, Total: len(Interfaces)}
	}
	return text, patched, nil
}
