package annotate

// nameComments is keyed by exact, case-sensitive entry name and covers both
// files and directories.
var nameComments = map[string]string{
	// project manifests
	"package.json":     "NPM project dependencies and scripts",
	"composer.json":    "PHP dependencies and autoloading",
	"requirements.txt": "Python dependencies",
	"Pipfile":          "Python dependencies managed by Pipenv",
	"Gemfile":          "Ruby dependencies",
	"go.mod":           "Go module and dependencies",
	"Cargo.toml":       "Rust manifest and dependencies",
	"pom.xml":          "Maven project configuration (Java)",
	"build.gradle":     "Gradle build script",

	// typescript and javascript tooling
	"tsconfig.json":      "TypeScript compiler configuration",
	"jsconfig.json":      "JavaScript configuration for IDEs",
	"babel.config.js":    "Babel transpiler configuration",
	"webpack.config.js":  "Webpack bundler configuration",
	"vite.config.js":     "Vite build tool configuration",
	"rollup.config.js":   "Rollup bundler configuration",
	"next.config.js":     "Next.js framework configuration",
	"nuxt.config.js":     "Nuxt.js framework configuration",
	"vue.config.js":      "Vue.js build configuration",
	"svelte.config.js":   "Svelte configuration",
	"tailwind.config.js": "Tailwind CSS configuration",
	"postcss.config.js":  "PostCSS processor configuration",

	// code quality
	".eslintrc":            "ESLint linter rules",
	".eslintrc.js":         "ESLint configuration in JavaScript",
	".eslintrc.json":       "ESLint configuration in JSON",
	".prettierrc":          "Prettier formatter configuration",
	".prettierrc.js":       "Prettier configuration in JavaScript",
	".prettierrc.json":     "Prettier configuration in JSON",
	"commitlint.config.js": "Commit message validation rules",
	".editorconfig":        "Cross-editor formatting settings",

	// git
	".gitignore":             "Files and folders ignored by Git",
	".gitattributes":         "Per-file Git attributes",
	".gitmodules":            "Git submodule configuration",
	".git-blame-ignore-revs": "Commits skipped by git blame",

	// ci/cd
	".travis.yml":             "Travis CI configuration",
	"dependabot.yml":          "Dependabot update configuration",
	".pre-commit-config.yaml": "pre-commit hook configuration",
	"CODEOWNERS":              "Owners of each area of the code",

	// tests
	"jest.config.js":       "Jest test framework configuration",
	"vitest.config.js":     "Vitest test framework configuration",
	"cypress.json":         "Cypress end-to-end test configuration",
	"playwright.config.js": "Playwright test configuration",

	// docker
	"Dockerfile":          "Docker image build instructions",
	"docker-compose.yml":  "Multi-container orchestration",
	"docker-compose.yaml": "Multi-container orchestration",
	".dockerignore":       "Files excluded from the Docker build",

	// project documentation
	"README.md":                "Main documentation and getting started guide",
	"README.rst":               "Main documentation in reStructuredText",
	"README.txt":               "Main documentation in plain text",
	"architecture.md":          "System architecture documentation",
	"archtecture.md":           "System architecture documentation",
	"todo.md":                  "Pending tasks and improvements",
	"TODO.md":                  "Pending tasks and improvements",
	"release.md":               "Release notes and planning",
	"RELEASE.md":               "Release notes and planning",
	"requisitos-funcionais.md": "Functional requirements specification",
	"requisitos.md":            "System requirements documentation",
	"CHANGELOG.md":             "Detailed history of changes and versions",
	"CHANGES.md":               "Changes between versions",
	"HISTORY.md":               "Project history and evolution",
	"Roadmap.md":               "Feature planning and schedule",
	"ROADMAP.md":               "Feature planning and schedule",

	// community
	"CONTRIBUTING.md":    "Guide for project contributors",
	"CONTRIBUTORS.md":    "People who have contributed",
	"contributors.yml":   "Structured contributor data",
	"CODE_OF_CONDUCT.md": "Community code of conduct",
	"MAINTAINING.md":     "Guide for project maintainers",
	"MAINTAINING":        "Guide for project maintainers",

	// security and legal
	"SECURITY.md": "Security and vulnerability policy",
	"LICENSE":     "Software usage and distribution license",
	"LICENSE.md":  "Software usage and distribution license",
	"LICENSE.txt": "Software usage and distribution license",
	"COPYRIGHT":   "Copyright information",
	"NOTICE.md":   "Legal notices and required attributions",
	"NOTICE":      "Legal notices and required attributions",

	// build and install
	"BUILDING.md":  "Detailed build instructions",
	"BUILDING":     "Detailed build instructions",
	"Makefile":     "Build and task automation",
	"makefile":     "Build and task automation",
	"MANIFEST.in":  "Files included in the distribution",
	"install.sh":   "Automated installation script",
	"configure.sh": "Environment configuration script",
	"run.sh":       "Runs the application",
	"start.sh":     "Starts the service",
	"stop.sh":      "Stops the application",
	"build.sh":     "Automated build script",
	"deploy.sh":    "Production deployment script",

	// citation
	"citation.cff": "Citation format for academic work",
	"CITATION.cff": "Citation format for academic work",

	// troubleshooting
	"Troubleshooting":    "Guide to solving common problems",
	"TROUBLESHOOTING.md": "Guide to solving common problems",
	"troubleshooting.md": "Guide to solving common problems",

	// versioning
	".version":    "Current project version number",
	"VERSION":     "Current project version number",
	"version.txt": "Current project version number",

	// entry points
	"index.html": "Main page of the web application",
	"index.js":   "Main application entry point",
	"index.ts":   "Main entry point in TypeScript",
	"main.js":    "Main executable file",
	"main.ts":    "Main executable file in TypeScript",
	"app.js":     "Main application setup",
	"App.js":     "Root React component",
	"App.tsx":    "Root React component in TypeScript",
	"server.js":  "Main HTTP server",
	"server.ts":  "Main HTTP server in TypeScript",

	// pwa and web servers
	"manifest.json":     "Progressive Web App manifest",
	"sw.js":             "Service worker for offline support",
	"service-worker.js": "Service worker for caching and offline use",
	"favicon.ico":       "Icon shown in the browser tab",
	"robots.txt":        "Instructions for search crawlers",
	"sitemap.xml":       "Site map for SEO",
	".htaccess":         "Apache server configuration",
	"web.config":        "IIS server configuration",

	// environment
	".env":             "Environment variables (not versioned)",
	".env.example":     "Example environment variables",
	".env.local":       "Local environment variables",
	".env.development": "Development environment variables",
	".env.production":  "Production environment variables",
	".env.test":        "Test environment variables",

	// git hooks
	"pre-commit":   "Hook run before each commit",
	"pre-push":     "Hook run before each push",
	"commit-msg":   "Hook validating commit messages",
	"post-commit":  "Hook run after each commit",
	"post-merge":   "Hook run after merging branches",
	"pre-receive":  "Server hook run before receiving a push",
	"post-receive": "Server hook run after receiving a push",
	"update":       "Hook run during updates",

	// main folders
	"src":    "Main application source code",
	"lib":    "Reusable libraries and modules",
	"public": "Publicly served static files",
	"static": "Static resources (images, fonts, etc)",
	"assets": "Application resources (images, icons, etc)",

	// ui
	"components": "Reusable interface components",
	"pages":      "Application pages and routes",
	"views":      "Application views and templates",
	"screens":    "Application screens (mobile/desktop)",
	"layouts":    "Base page layouts",
	"templates":  "Reusable templates",
	"widgets":    "Widgets and micro-components",

	// styles
	"styles": "CSS/SCSS style files",
	"css":    "CSS style sheets",
	"scss":   "Sass/SCSS files",
	"sass":   "Sass files",
	"themes": "Themes and visual variants",

	// data and api
	"data":       "Static data and mocks",
	"api":        "API endpoints and configuration",
	"services":   "Services and external integrations",
	"models":     "Data models and entities",
	"database":   "Database configuration and scripts",
	"db":         "Database related files",
	"migrations": "Database migration scripts",

	// business logic
	"controllers": "Application controllers",
	"routes":      "Route and endpoint definitions",
	"middleware":  "Processing middleware",
	"helpers":     "Helper functions and utilities",
	"utils":       "Generic utilities and functions",
	"tools":       "Development tools",

	// state
	"store":    "Global state management",
	"context":  "React/Vue contexts",
	"hooks":    "Git automation hooks",
	"reducers": "State management reducers",

	// configuration
	"config":   "Configuration files",
	"settings": "Application settings",
	"env":      "Environment settings",

	// tests
	"test":      "Automated tests",
	"tests":     "Test suite",
	"__tests__": "Jest/React Testing Library tests",
	"spec":      "Specifications and tests",
	"e2e":       "End-to-end tests",

	// documentation
	"docs":          "Detailed technical documentation",
	"documentation": "Complete project documentation",
	"guides":        "Guides and tutorials",

	// build and deploy
	"build":   "Generated build files",
	"dist":    "Optimized production distribution",
	"output":  "Build and compilation output",
	"scripts": "Automation and deployment scripts",

	// security
	"auth":     "Authentication and authorization",
	"security": "Security settings",
	"admin":    "Administrative features",

	// i18n
	"locales":      "Localization and language files",
	"i18n":         "Application internationalization",
	"translations": "Translations into multiple languages",
	"lang":         "Language files",

	// media
	"images": "Images and visual resources",
	"img":    "Application images",
	"icons":  "Icons and graphic elements",
	"fonts":  "Custom typefaces",
	"media":  "Media files (video, audio)",

	// extensions
	"plugins":    "Plugins and extensions",
	"extensions": "Feature extensions",
	"addons":     "Add-ons and complements",

	// git hooks
	".githooks": "Custom Git automation scripts",

	// ci/cd
	".github":   "GitHub Actions configuration and templates",
	".gitlab":   "GitLab CI/CD configuration",
	"ci":        "Continuous integration scripts",
	"workflows": "Automation workflows",

	// containers
	"docker":     "Docker configuration and scripts",
	"k8s":        "Kubernetes manifests",
	"kubernetes": "Kubernetes deployment configuration",
}

// extensionComments is keyed by lower-cased extension including the dot and
// only applies to files.
var extensionComments = map[string]string{
	".tsx":    "React component in TypeScript",
	".jsx":    "React component in JavaScript",
	".vue":    "Vue.js single-file component",
	".svelte": "Svelte component",
	".css":    "CSS style sheet",
	".scss":   "Sass style sheet",
	".sass":   "Sass style sheet (indented syntax)",
	".less":   "Less style sheet",
	".js":     "JavaScript script",
	".ts":     "TypeScript script",
	".mjs":    "ES6 JavaScript module",
	".json":   "Structured JSON data",
	".yaml":   "YAML configuration",
	".yml":    "YAML configuration",
	".toml":   "TOML configuration",
	".xml":    "Structured XML document",
	".md":     "Markdown documentation",
	".rst":    "reStructuredText documentation",
	".txt":    "Plain text file",
	".png":    "Optimized PNG image",
	".jpg":    "Compressed JPEG image",
	".jpeg":   "Compressed JPEG image",
	".gif":    "Animated GIF image",
	".svg":    "Scalable vector graphic",
	".ico":    "Application icon",
	".webp":   "Optimized WebP image",
	".pdf":    "PDF document",
	".sh":     "Unix/Linux shell script",
	".bat":    "Windows batch script",
	".ps1":    "PowerShell script",
	".py":     "Python script",
	".rb":     "Ruby script",
	".go":     "Go source code",
	".rs":     "Rust source code",
	".java":   "Java source code",
	".cpp":    "C++ source code",
	".c":      "C source code",
	".cs":     "C# source code",
	".php":    "PHP script",
	".sql":    "SQL database script",
}
