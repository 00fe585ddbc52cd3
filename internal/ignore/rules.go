package ignore

// defaultIgnoredNames lists entry names excluded from every tree. Entries with
// glob metacharacters become glob rules and entries containing a slash become
// root-relative nested path rules; see NewFilter.
var defaultIgnoredNames = []string{
	// dependencies and build output
	"node_modules",
	"bower_components",
	"vendor",
	"dist",
	"build",
	"out",
	".next",
	".nuxt",
	".output",

	// python virtual environments
	"venv",
	"env",
	".venv",
	"virtualenv",
	"__pycache__",
	"*.pyc",
	".pytest_cache",

	// lock files
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"composer.lock",
	"Pipfile.lock",
	"poetry.lock",
	"Gemfile.lock",
	"go.sum",
	"Cargo.lock",

	// version control; .gitattributes and .gitmodules stay visible
	".git",
	".svn",
	".hg",

	// editors
	".vscode",
	".idea",
	".vs",
	"*.swp",
	"*.swo",
	"*~",
	".sublime-project",
	".sublime-workspace",

	// operating system
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
	"$RECYCLE.BIN",

	// logs and temporary files
	"*.log",
	"logs",
	".log",
	"*.tmp",
	"*.temp",
	"tmp",
	"temp",
	".cache",
	".temp",
	".tmp",
	"cache",

	// coverage
	"coverage",
	".coverage",
	".nyc_output",
	"junit.xml",
	".jest",

	// compiled artifacts
	"*.class",
	"*.o",
	"*.so",
	"*.dll",
	"*.exe",

	// mobile
	"android/app/build",
	"ios/build",
	".expo",
	".expo-shared",

	// terraform
	".terraform",
	"*.tfstate",
	"*.tfstate.backup",

	// misc
	"Backup*",
	"*.backup",
	"*.bak",
	".sass-cache",
	".parcel-cache",
}

// defaultIgnoredPatterns are evaluated in order against the entry name.
var defaultIgnoredPatterns = []string{
	`(?i)\.log$`,
	`(?i)\.tmp$`,
	`(?i)\.temp$`,
	`(?i)\.cache$`,
	`~$`,
	`(?i)\.swp$`,
	`(?i)\.swo$`,
	`(?i)\.pyc$`,
	`(?i)\.pyo$`,
	`(?i)\.class$`,
	`(?i)\.o$`,
	`(?i)\.so$`,
	`(?i)\.dll$`,
	`(?i)\.exe$`,
	`(?i)\.bak$`,
	`(?i)\.backup$`,
	`(?i)^npm-debug\.log`,
	`(?i)^yarn-debug\.log`,
	`(?i)^yarn-error\.log`,
}
