//go:build linux || darwin

package launch

const (
	VirtualEnvBinaryFolder  = "bin"
	VirtualEnvPythonBinary  = "python"
	DispatcherExecutable    = "python3"
	DefaultPythonExecutable = "python"
)
