package analyzer

// skipDirs are directory names never descended into. Dot-prefixed
// directories are skipped by a separate rule.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"target":       {},
	"out":          {},
	"bin":          {},
	"obj":          {},
	"coverage":     {},
	"tmp":          {},
	"__pycache__":  {},
	"venv":         {},
	"virtualenv":   {},
	"bower_components": {},
}

// detection is a language/framework pair recorded when a table entry
// matches. Either field may be empty.
type detection struct {
	Language  string
	Framework string
}

// configDirs maps well-known directory names to detections. These are
// checked before the skip rules so dot-directories still count.
var configDirs = map[string]detection{
	".github":   {Framework: "github-actions"},
	".claude":   {Framework: "claude"},
	".vscode":   {Framework: "vscode"},
	".circleci": {Framework: "circleci"},
	".devcontainer": {Framework: "devcontainer"},
}

// configFiles maps well-known file names (matched on the path's last
// component) to detections.
var configFiles = map[string]detection{
	"package.json":        {Language: "javascript"},
	"tsconfig.json":       {Language: "typescript"},
	"go.mod":              {Language: "go"},
	"go.work":             {Language: "go", Framework: "monorepo"},
	"requirements.txt":    {Language: "python"},
	"pyproject.toml":      {Language: "python"},
	"setup.py":            {Language: "python"},
	"Pipfile":             {Language: "python"},
	"Cargo.toml":          {Language: "rust"},
	"Gemfile":             {Language: "ruby"},
	"composer.json":       {Language: "php"},
	"pom.xml":             {Language: "java", Framework: "maven"},
	"build.gradle":        {Language: "java", Framework: "gradle"},
	"build.gradle.kts":    {Language: "kotlin", Framework: "gradle"},
	"CMakeLists.txt":      {Language: "cpp", Framework: "cmake"},
	"Dockerfile":          {Framework: "docker"},
	"Makefile":            {Framework: "make"},
	"pnpm-workspace.yaml": {Framework: "monorepo"},
	"lerna.json":          {Framework: "monorepo"},
	"turbo.json":          {Framework: "monorepo"},
	"serverless.yml":      {Framework: "serverless"},
	"next.config.js":      {Framework: "nextjs"},
	"nuxt.config.ts":      {Framework: "nuxt"},
	"angular.json":        {Framework: "angular"},
	"svelte.config.js":    {Framework: "svelte"},
	"tailwind.config.js":  {Framework: "tailwind"},
	"vite.config.ts":      {Framework: "vite"},
	"terraform.tf":        {Framework: "terraform"},
	"main.tf":             {Framework: "terraform"},
}

// extensions maps file extensions (with dot) to languages.
var extensions = map[string]string{
	".go":    "go",
	".js":    "javascript",
	".jsx":   "javascript",
	".mjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".java":  "java",
	".kt":    "kotlin",
	".swift": "swift",
	".php":   "php",
	".cs":    "csharp",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".c":     "c",
	".scala": "scala",
	".ex":    "elixir",
	".exs":   "elixir",
	".hs":    "haskell",
	".lua":   "lua",
	".dart":  "dart",
	".r":     "r",
	".zig":   "zig",
	".vue":   "vue",
}
