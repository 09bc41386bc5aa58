package service

// Interface probe states reported by InspectFile.
const (
	StateUnpatched = "unpatched"
	StatePatched   = "patched"
	StateAbsent    = "absent"
)

type PatchFileInput struct {
	Location string `json:"location" description:"path or AFS URL of the generated swift bindings file"`
	DryRun   bool   `json:"dryRun,omitempty" description:"report the patch count without writing the file"`
}

type PatchFileOutput struct {
	Location string `json:"location"`
	Patched  int    `json:"patched" description:"number of callback interfaces rewritten"`
	DryRun   bool   `json:"dryRun,omitempty"`
}

type InspectFileInput struct {
	Location string `json:"location" description:"path or AFS URL of the generated swift bindings file"`
}

type InterfaceState struct {
	Name  string `json:"name"`
	State string `json:"state" description:"unpatched|patched|absent"`
}

type InspectFileOutput struct {
	Location   string           `json:"location"`
	Interfaces []InterfaceState `json:"interfaces,omitempty"`
}
