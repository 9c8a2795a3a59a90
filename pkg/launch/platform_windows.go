//go:build windows
// +build windows

package launch

const (
	VirtualEnvBinaryFolder  = "Scripts"
	VirtualEnvPythonBinary  = "python.exe"
	DispatcherExecutable    = "py"
	DefaultPythonExecutable = "python"
)
