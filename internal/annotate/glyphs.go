package annotate

const (
	// DefaultFolderGlyph is shown for directories without a table entry.
	DefaultFolderGlyph = "📁"
	// DefaultFileGlyph is shown for files without a name or extension entry.
	DefaultFileGlyph = "📄"
)

// extensionGlyphs is keyed by lower-cased extension including the dot.
var extensionGlyphs = map[string]string{
	// source code
	".js":    "⚡",
	".jsx":   "⚛️",
	".ts":    "📘",
	".tsx":   "⚛️",
	".vue":   "💚",
	".py":    "🐍",
	".java":  "☕",
	".php":   "🐘",
	".rb":    "💎",
	".go":    "🔵",
	".rs":    "🦀",
	".cpp":   "⚙️",
	".c":     "⚙️",
	".cs":    "🔷",
	".swift": "🍎",
	".kt":    "🟣",

	// web
	".html": "📄",
	".css":  "🎨",
	".scss": "🎨",
	".sass": "🎨",
	".less": "🎨",

	// images
	".png":  "🖼️",
	".jpg":  "🖼️",
	".jpeg": "🖼️",
	".gif":  "🖼️",
	".svg":  "🎨",
	".ico":  "🎯",
	".webp": "🖼️",

	// documents
	".md":   "📝",
	".txt":  "📄",
	".pdf":  "📕",
	".doc":  "📄",
	".docx": "📄",

	// configuration
	".json":   "⚙️",
	".xml":    "📋",
	".yml":    "⚙️",
	".yaml":   "⚙️",
	".toml":   "⚙️",
	".ini":    "⚙️",
	".config": "⚙️",

	// scripts
	".sh":  "📜",
	".bat": "📜",
	".ps1": "📜",

	// build metadata
	".cff": "📋",
	".in":  "⚙️",

	// archives
	".zip": "📦",
	".tar": "📦",
	".gz":  "📦",
}

// folderGlyphs is keyed by lower-cased directory name.
var folderGlyphs = map[string]string{
	// layout
	"src":    "📁",
	"lib":    "📚",
	"public": "🌐",
	"static": "🌐",
	"assets": "📦",

	// ui
	"components": "🧩",
	"pages":      "📄",
	"views":      "👁️",
	"screens":    "📱",
	"layouts":    "📐",
	"templates":  "📋",
	"widgets":    "🧩",

	// styles
	"styles": "🎨",
	"css":    "🎨",
	"scss":   "🎨",
	"sass":   "🎨",
	"themes": "🎨",

	// data and api
	"data":       "💾",
	"api":        "🌐",
	"services":   "⚙️",
	"models":     "🗄️",
	"database":   "🗄️",
	"db":         "🗄️",
	"migrations": "🗄️",

	// business logic
	"controllers": "🎮",
	"routes":      "🛣️",
	"middleware":  "🔗",
	"helpers":     "🛠️",
	"utils":       "🔧",
	"tools":       "🛠️",

	// state
	"store":    "🏪",
	"context":  "🔄",
	"hooks":    "🪝",
	"reducers": "🔄",

	// configuration
	"config":   "⚙️",
	"settings": "⚙️",
	"env":      "🔐",

	// tests
	"test":      "🧪",
	"tests":     "🧪",
	"__tests__": "🧪",
	"spec":      "🧪",
	"e2e":       "🧪",

	// documentation
	"docs":          "📚",
	"documentation": "📚",
	"guides":        "📖",

	// build and deploy
	"build":   "🏗️",
	"dist":    "📦",
	"output":  "📤",
	"scripts": "📜",

	// security
	"auth":     "🔐",
	"security": "🛡️",
	"admin":    "👑",

	// i18n
	"locales":      "🌐",
	"i18n":         "🌐",
	"translations": "🌐",
	"lang":         "🌐",

	// media
	"images": "🖼️",
	"img":    "🖼️",
	"icons":  "🎯",
	"fonts":  "🔤",
	"media":  "📺",

	// extensions
	"plugins":    "🔌",
	"extensions": "🔌",
	"addons":     "🔌",

	// git hooks
	".githooks": "🪝",

	// ci/cd
	".github":   "🔧",
	".gitlab":   "🔧",
	"ci":        "🔧",
	"workflows": "🔧",

	// containers
	"docker":     "🐳",
	"k8s":        "⚓",
	"kubernetes": "⚓",
}

// fileNameGlyphs is keyed by exact, case-sensitive file name.
var fileNameGlyphs = map[string]string{
	// package managers
	"package.json":     "📦",
	"composer.json":    "📦",
	"requirements.txt": "📦",
	"Pipfile":          "📦",
	"Gemfile":          "💎",
	"go.mod":           "🔵",
	"Cargo.toml":       "🦀",
	"pom.xml":          "☕",
	"build.gradle":     "🐘",

	// typescript and javascript tooling
	"tsconfig.json":      "📘",
	"jsconfig.json":      "📘",
	"babel.config.js":    "🔄",
	"webpack.config.js":  "📦",
	"vite.config.js":     "⚡",
	"rollup.config.js":   "📦",
	"next.config.js":     "⚡",
	"nuxt.config.js":     "💚",
	"vue.config.js":      "💚",
	"svelte.config.js":   "🧡",
	"tailwind.config.js": "🎨",
	"postcss.config.js":  "🎨",

	// code quality
	".eslintrc":            "📏",
	".eslintrc.js":         "📏",
	".eslintrc.json":       "📏",
	".prettierrc":          "✨",
	".prettierrc.js":       "✨",
	".prettierrc.json":     "✨",
	"commitlint.config.js": "📝",
	".editorconfig":        "📝",

	// git
	".gitignore":             "🚫",
	".gitattributes":         "⚙️",
	".gitmodules":            "🔗",
	".git-blame-ignore-revs": "🚫",

	// ci/cd
	".travis.yml":             "🔧",
	"dependabot.yml":          "🤖",
	".pre-commit-config.yaml": "🪝",
	"CODEOWNERS":              "👥",

	// tests
	"jest.config.js":       "🧪",
	"vitest.config.js":     "🧪",
	"cypress.json":         "🧪",
	"playwright.config.js": "🧪",

	// docker
	"Dockerfile":          "🐳",
	"docker-compose.yml":  "🐳",
	"docker-compose.yaml": "🐳",
	".dockerignore":       "🚫",

	// project documentation
	"README.md":                "📖",
	"README.rst":               "📖",
	"README.txt":               "📖",
	"architecture.md":          "🏗️",
	"archtecture.md":           "🏗️",
	"todo.md":                  "📝",
	"TODO.md":                  "📝",
	"release.md":               "🚀",
	"RELEASE.md":               "🚀",
	"requisitos-funcionais.md": "📋",
	"requisitos.md":            "📋",
	"CHANGELOG.md":             "📜",
	"CHANGES.md":               "📜",
	"HISTORY.md":               "📜",
	"Roadmap.md":               "🗺️",
	"ROADMAP.md":               "🗺️",

	// community
	"CONTRIBUTING.md":    "🤝",
	"CONTRIBUTORS.md":    "👥",
	"contributors.yml":   "👥",
	"CODE_OF_CONDUCT.md": "📜",
	"MAINTAINING.md":     "🛠️",
	"MAINTAINING":        "🛠️",

	// security and legal
	"SECURITY.md": "🛡️",
	"LICENSE":     "📜",
	"LICENSE.md":  "📜",
	"LICENSE.txt": "📜",
	"COPYRIGHT":   "©️",
	"NOTICE.md":   "📢",
	"NOTICE":      "📢",

	// build and install
	"BUILDING.md":  "🏗️",
	"BUILDING":     "🏗️",
	"Makefile":     "🔨",
	"makefile":     "🔨",
	"MANIFEST.in":  "📋",
	"install.sh":   "💾",
	"configure.sh": "⚙️",
	"run.sh":       "🚀",
	"start.sh":     "🚀",
	"stop.sh":      "⏹️",
	"build.sh":     "🏗️",
	"deploy.sh":    "🚀",

	// citation
	"citation.cff": "📚",
	"CITATION.cff": "📚",

	// troubleshooting
	"Troubleshooting":    "🔧",
	"TROUBLESHOOTING.md": "🔧",
	"troubleshooting.md": "🔧",

	// versioning
	".version":    "🏷️",
	"VERSION":     "🏷️",
	"version.txt": "🏷️",

	// entry points
	"index.html": "🏠",
	"index.js":   "🚀",
	"index.ts":   "🚀",
	"main.js":    "🚀",
	"main.ts":    "🚀",
	"app.js":     "⚛️",
	"App.js":     "⚛️",
	"App.tsx":    "⚛️",
	"server.js":  "🖥️",
	"server.ts":  "🖥️",

	// pwa and web servers
	"manifest.json":     "📱",
	"sw.js":             "⚙️",
	"service-worker.js": "⚙️",
	"favicon.ico":       "🎯",
	"robots.txt":        "🤖",
	"sitemap.xml":       "🗺️",
	".htaccess":         "⚙️",
	"web.config":        "⚙️",

	// environment
	".env":             "🔐",
	".env.example":     "🔐",
	".env.local":       "🔐",
	".env.development": "🔐",
	".env.production":  "🔐",
	".env.test":        "🔐",

	// git hooks
	"pre-commit":   "🪝",
	"pre-push":     "🪝",
	"commit-msg":   "🪝",
	"post-commit":  "🪝",
	"post-merge":   "🪝",
	"pre-receive":  "🪝",
	"post-receive": "🪝",
	"update":       "🪝",
}
