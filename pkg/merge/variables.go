package merge

// Variables are the name lists the package.json strategies consult to decide
// which dependencies may be copied from the remote manifest. A dependency is
// copyable when its name contains any of the listed substrings.
type Variables struct {
	CopyableDependencies    []string `mapstructure:"copyable_dependencies" toml:"copyable_dependencies" yaml:"copyable_dependencies"`
	CopyableDevDependencies []string `mapstructure:"copyable_dev_dependencies" toml:"copyable_dev_dependencies" yaml:"copyable_dev_dependencies"`
}

var defaultCopyableDevDependencies = []string{
	"jest",
	"ava",
	"mocha",
	"sinon",
	"playwright",
	"eslint",
	"prettier",
	"webpack",
	"rollup",
	"swc",
	"esbuild",
	"babel",
	"parcel",
	"typescript",
	"np",
	"tailwind",
	"ts-node",
	"tsup",
	"postcss",
	"autoprefixer",
	"react",
	"next",
}

// DefaultVariables returns a fresh copy of the built-in variables.
func DefaultVariables() Variables {
	return Variables{
		CopyableDependencies:    []string{},
		CopyableDevDependencies: append([]string(nil), defaultCopyableDevDependencies...),
	}
}
