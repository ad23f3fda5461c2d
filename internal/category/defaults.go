package category

import "sync"

// Category names used by the default table.
const (
	Images        = "Images"
	Videos        = "Videos"
	Audios        = "Audios"
	Documents     = "Documents"
	Installers    = "Installers"
	Archives      = "Archives"
	Code          = "Code"
	Fonts         = "Fonts"
	Models3D      = "3D Models"
	Databases     = "Databases"
	Ebooks        = "Ebooks"
	CAD           = "CAD"
	DiskImages    = "Disk Images"
	Spreadsheets  = "Spreadsheets"
	Presentations = "Presentations"
	Certificates  = "Certificates"
)

var defaultRules = []Rule{
	{Images, []string{
		"jpg", "jpeg", "png", "gif", "svg", "webp", "bmp", "ico", "tiff",
		"tif", "heic", "heif", "raw", "cr2", "nef", "arw", "dng", "psd",
		"ai", "eps", "avif", "jfif",
	}},
	{Videos, []string{
		"mp4", "mkv", "mov", "avi", "wmv", "flv", "webm", "m4v", "mpg",
		"mpeg", "3gp", "3g2", "ogv", "ts", "vob", "mts", "m2ts", "f4v",
		"rmvb", "asf", "divx",
	}},
	{Audios, []string{
		"mp3", "wav", "flac", "aac", "ogg", "opus", "m4a", "wma", "aiff",
		"ape", "alac", "pcm", "3gp", "amr", "mid", "midi", "ra", "oga",
	}},
	{Documents, []string{
		"pdf", "doc", "docx", "txt", "rtf", "odt", "pages", "tex", "wpd",
		"xlsx", "xls", "csv", "ods", "xlsm", "xlsb", "numbers",
		"ppt", "pptx", "pps", "odp", "key",
		"md", "markdown", "log", "msg", "eml",
	}},
	{Installers, []string{
		"exe", "msi", "apk", "dmg", "pkg", "deb", "rpm", "appimage",
		"flatpak", "snap", "run", "app", "bat", "sh", "bin", "bundle",
		"x86_64", "aarch64", "arm64", "i386",
	}},
	{Archives, []string{
		"zip", "rar", "7z", "tar", "gz", "bz2", "xz", "tgz", "tbz2",
		"txz", "tar.gz", "tar.bz2", "tar.xz", "zipx", "cab", "iso",
		"lzh", "arj", "z", "lz", "lzma", "zst",
	}},
	{Code, []string{
		"java", "scala", "groovy", "clj", "cljs",
		"html", "htm", "css", "scss", "sass", "less", "js", "jsx", "ts",
		"tsx", "vue", "svelte",
		"c", "cpp", "cc", "cxx", "h", "hpp", "hxx", "rs", "go",
		"py", "rb", "php", "pl", "lua", "r", "jl",
		"hs", "elm", "fs", "fsx", "ml", "mli", "ex", "exs", "erl",
		"sh", "bash", "zsh", "fish", "ps1", "psm1",
		"json", "xml", "yaml", "yml", "toml", "ini", "conf", "cfg",
		"gradle", "maven", "cmake", "make", "mk",
		"swift", "m", "mm", "dart", "kt", "kts",
		"sql", "graphql", "proto", "vim", "asm", "s",
	}},
	{Fonts, []string{
		"ttf", "otf", "woff", "woff2", "eot", "fon", "dfont",
	}},
	{Models3D, []string{
		"obj", "fbx", "stl", "dae", "3ds", "blend", "gltf", "glb", "ply",
		"max", "ma", "mb", "c4d", "skp",
	}},
	{Databases, []string{
		"db", "sqlite", "sqlite3", "mdb", "accdb", "sql", "dbf", "sav",
	}},
	{Ebooks, []string{
		"epub", "mobi", "azw", "azw3", "fb2", "lit", "lrf", "cbr", "cbz",
	}},
	{CAD, []string{
		"dwg", "dxf", "dwf", "dgn", "rvt", "ifc", "step", "stp", "iges", "igs",
	}},
	{DiskImages, []string{
		"iso", "img", "dmg", "vdi", "vmdk", "vhd", "vhdx", "qcow2", "toast",
	}},
	{Spreadsheets, []string{
		"xlsx", "xls", "csv", "ods", "xlsm", "xlsb", "numbers", "tsv",
	}},
	{Presentations, []string{
		"ppt", "pptx", "pps", "ppsx", "odp", "key",
	}},
	{Certificates, []string{
		"pem", "crt", "cer", "p12", "pfx", "key", "csr", "p7b", "p7c",
	}},
}

var (
	defaultOnce sync.Once
	defaultSet  *RuleSet
)

// Default returns the built-in rule table. The same instance is shared by
// every caller.
func Default() *RuleSet {
	defaultOnce.Do(func() {
		defaultSet = New(defaultRules)
	})
	return defaultSet
}
