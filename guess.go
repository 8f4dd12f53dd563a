package ipfsdeploy

import "github.com/spf13/afero"

// guessDirs lists conventional static site output directories, in the
// order they are tried.
var guessDirs = []string{
	"_site",         // jekyll, hakyll, eleventy
	"site",          // mkdocs
	"public",        // gatsby, hugo
	"dist",          // nuxt, vite
	"output",        // pelican
	"out",           // hexo, next export
	"build",         // create-react-app, metalsmith, middleman
	"website/build", // docusaurus
	"docs",          // many others
}

// GuessPath returns the first conventional output directory that exists
// relative to the working directory of fsys.
func GuessPath(fsys afero.Fs) (string, bool) {
	return guessFrom(fsys, guessDirs)
}

// ResolvePath returns explicit unchanged when it is non-empty and falls back
// to GuessPath otherwise.
func ResolvePath(fsys afero.Fs, explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	return GuessPath(fsys)
}

func guessFrom(fsys afero.Fs, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if ok, _ := afero.Exists(fsys, candidate); ok {
			return candidate, true
		}
	}
	return "", false
}
