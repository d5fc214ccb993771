package logkey

const (
	Service = "service"

	Package    = "package"
	ModulePath = "module_path"
	OutputDir  = "output.dir"
	ConfigFile = "config.file"

	IDType   = "id.type"
	IDPrefix = "id.prefix"
	File     = "file"
	Files    = "files"
)
