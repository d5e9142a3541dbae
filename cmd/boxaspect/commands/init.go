package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agiangrant/boxaspect"
)

// Init implements the 'boxaspect init' command
func Init(args []string) error {
	return runInit(os.Stdout, args)
}

func runInit(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	dir := fs.String("dir", ".", "Directory to write the files into")
	force := fs.Bool("force", false, "Overwrite existing files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(*dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", *dir, err)
	}

	scenePath := filepath.Join(*dir, "scene.toml")
	if _, err := os.Stat(scenePath); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", scenePath)
	}

	scene := boxaspect.DefaultScene()
	if err := boxaspect.SaveScene(scenePath, scene); err != nil {
		return err
	}
	fmt.Fprintf(w, "  ✓ Created %s\n", scenePath)

	themePath := filepath.Join(*dir, scene.Theme)
	if _, err := os.Stat(themePath); os.IsNotExist(err) || *force {
		if err := os.WriteFile(themePath, []byte(defaultThemeToml), 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", themePath, err)
		}
		fmt.Fprintf(w, "  ✓ Created %s\n", themePath)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  boxaspect layout %s\n", scenePath)
	return nil
}

const defaultThemeToml = `# Box layout theme
# Numeric constants per theme class

# Separation used by boxes that enable box_theme_separation
[constants.BoxContainer]
separation = 4.0

# Separation added by every box
[constants.BoxAspectContainer]
separation = 0.0
`
