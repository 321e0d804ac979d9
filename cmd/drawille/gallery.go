package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awelkie/drawille/internal/platform/tui"
	"github.com/awelkie/drawille/internal/storage"
)

var flagLimit int

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Work with saved frames",
	Long: `Frames are saved from the viewer with S, or by 'drawille draw --save'.
Names are not unique: a name refers to the latest frame saved under it.`,
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved frames, newest first",
	Args:  cobra.NoArgs,
	Run:   runGalleryList,
}

var galleryShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the latest frame saved under a name",
	Args:  cobra.ExactArgs(1),
	Run:   runGalleryShow,
}

var galleryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete every frame saved under a name",
	Args:  cobra.ExactArgs(1),
	Run:   runGalleryDelete,
}

var galleryBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved frames interactively",
	Long: `Browse saved frames with a preview of the selected one.

Controls:
  Up/Down/j/k  - Move
  X            - Delete frames with the selected name
  Esc/Q        - Quit`,
	Args: cobra.NoArgs,
	Run:  runGalleryBrowse,
}

func init() {
	galleryListCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Number of frames to list")

	galleryCmd.AddCommand(galleryListCmd)
	galleryCmd.AddCommand(galleryShowCmd)
	galleryCmd.AddCommand(galleryDeleteCmd)
	galleryCmd.AddCommand(galleryBrowseCmd)
}

// openGallery opens the configured gallery or exits.
func openGallery() *storage.Store {
	store, err := storage.Open(cfg.Gallery.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening gallery database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runGalleryList(_ *cobra.Command, _ []string) {
	store := openGallery()
	defer store.Close()

	frames, err := store.RecentFrames(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving frames: %v\n", err)
		os.Exit(1)
	}

	if len(frames) == 0 {
		fmt.Println("No frames saved yet.")
		fmt.Println()
		fmt.Println("Press S in 'drawille demo play' or use 'drawille draw --save <name>'.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range frames {
		maxNameLen = max(maxNameLen, len(f.Name))
	}

	// Print header
	fmt.Printf("  %-5s  %-*s  %-8s  %-16s  %s\n", "ID", maxNameLen, "Name", "Kind", "Saved", "Source")
	fmt.Printf("  %-5s  %-*s  %-8s  %-16s  %s\n", "--", maxNameLen, "----", "----", "-----", "------")

	// Print frames
	for _, f := range frames {
		dateStr := f.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-*s  %-8s  %-16s  %s\n", f.ID, maxNameLen, f.Name, f.Kind, dateStr, f.Source)
	}
}

func runGalleryShow(_ *cobra.Command, args []string) {
	store := openGallery()
	defer store.Close()

	entry, err := store.Frame(args[0])
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving frame: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: no frame named %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'drawille gallery list' to see saved frames.")
		os.Exit(1)
	}

	fmt.Println(entry.Body)
}

func runGalleryDelete(_ *cobra.Command, args []string) {
	store := openGallery()
	defer store.Close()

	n, err := store.DeleteFrames(args[0])
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error deleting frames: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %d frame(s) named %q.\n", n, args[0])
}

func runGalleryBrowse(_ *cobra.Command, _ []string) {
	store := openGallery()

	rcfg := runtimeConfig()
	theme := tui.NewTheme(nil, cfg.Viewer.AccentColor)
	err := tui.RunGallery(store, theme, rcfg.ScreenW, rcfg.ScreenH)

	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
