package assets

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the bundled default dictionary, one lowercase word per entry.
func WordList() ([]string, error) {
	return readLines("words.txt")
}

// migrations is resolved at init so a missing sql/ tree fails at startup
// instead of inside the migrator.
var migrations = mustSub("sql", "*.sql")

// Migrations returns the SQL migration files rooted at "sql".
func Migrations() fs.FS {
	return migrations
}

// mustSub returns the dir subtree of FS and panics unless it holds at least
// one file matching pattern.
func mustSub(dir, pattern string) fs.FS {
	sub, err := fs.Sub(FS, dir)
	if err != nil {
		panic(fmt.Sprintf("assets: %s: %v", dir, err))
	}
	matches, err := fs.Glob(sub, pattern)
	if err != nil || len(matches) == 0 {
		panic(fmt.Sprintf("assets: no %s files under %s", pattern, dir))
	}
	return sub
}
