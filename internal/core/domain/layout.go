package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "rebuild.yaml"

	// EnvFileName is the optional dotenv file loaded next to the configuration file.
	EnvFileName = ".env"

	// CompileDatabaseFileName is the name of the emitted compilation database.
	CompileDatabaseFileName = "compile_commands.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Configuration defaults.
const (
	DefaultSourceDir = "src"
	DefaultSourceExt = "cpp"
	DefaultHeaderDir = "include"
	DefaultHeaderExt = "hpp"
	DefaultObjectDir = "build"
	DefaultObjectExt = "o"
	DefaultExeDir    = "bin"
	DefaultExeFile   = "a.out"
	DefaultJobs      = 1
)
