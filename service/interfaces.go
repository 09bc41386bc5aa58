package service

// CallbackInterface identifies one UniFFI callback interface in the generated
// Swift bindings: the interface name, its vtable struct type and the exported
// Rust function that registers the vtable.
type CallbackInterface struct {
	Name       string `json:"name"`
	VTableType string `json:"vtableType"`
	InitFn     string `json:"initFn"`
}

// Interfaces is the fixed set of walletkit-core callback interfaces the
// generator emits. The list is ordered and never mutated; completeness is
// enforced by PatchDocument, which refuses anything short of all entries.
var Interfaces = []CallbackInterface{
	{
		Name:       "AtomicBlobStore",
		VTableType: "UniffiVTableCallbackInterfaceAtomicBlobStore",
		InitFn:     "uniffi_walletkit_core_fn_init_callback_vtable_atomicblobstore",
	},
	{
		Name:       "DeviceKeystore",
		VTableType: "UniffiVTableCallbackInterfaceDeviceKeystore",
		InitFn:     "uniffi_walletkit_core_fn_init_callback_vtable_devicekeystore",
	},
	{
		Name:       "Logger",
		VTableType: "UniffiVTableCallbackInterfaceLogger",
		InitFn:     "uniffi_walletkit_core_fn_init_callback_vtable_logger",
	},
	{
		Name:       "StorageProvider",
		VTableType: "UniffiVTableCallbackInterfaceStorageProvider",
		InitFn:     "uniffi_walletkit_core_fn_init_callback_vtable_storageprovider",
	},
}
