// Package topics adds `help <topic>` to a cobra command tree. Topics are
// text or markdown files read from an fs.FS, usually an embedded
// directory. A file named option-<flag> documents a flag and is also found
// by its flag spelling: `help --dry-run`.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

const optionPrefix = "option-"

// Topic is one help document.
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures a TopicManager.
type Options struct {
	// Extensions of files that are topics; default .txt and .md
	Extensions []string
	// Renderer formats content; default PlainRenderer
	Renderer Renderer
}

// TopicManager holds the topics of one command tree.
type TopicManager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// New loads every topic file under fsys. A nil fsys has no topics.
func New(fsys fs.FS, opts Options) (*TopicManager, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".txt", ".md"}
	}
	tm := &TopicManager{topics: map[string]*Topic{}, renderer: opts.Renderer}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	if fsys == nil {
		return tm, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !slices.Contains(exts, path.Ext(p)) {
			return err
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{Name: name, FilePath: p, Content: string(data)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return tm, nil
}

// GetTopic finds a topic by name, by flag spelling, or by option name
// without its prefix.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	for _, key := range []string{name, optionPrefix + name} {
		if t, ok := tm.topics[key]; ok {
			return t, true
		}
	}
	return nil, false
}

// ListTopics returns the topic names, sorted.
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes topic through the renderer.
func (tm *TopicManager) Render(w io.Writer, topic *Topic) {
	_, _ = io.WriteString(w, tm.renderer.Render(topic.Content, path.Ext(topic.FilePath)))
}

func (tm *TopicManager) writeIndex(w io.Writer, app string) {
	var general, options []string
	for _, name := range tm.ListTopics() {
		if opt, ok := strings.CutPrefix(name, optionPrefix); ok {
			options = append(options, "--"+opt)
		} else {
			general = append(general, name)
		}
	}

	if len(general)+len(options) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	_, _ = fmt.Fprintln(w, "Available help topics:")
	section := func(title string, names []string) {
		if len(names) == 0 {
			return
		}
		_, _ = fmt.Fprintf(w, "\n%s:\n", title)
		for _, n := range names {
			_, _ = fmt.Fprintf(w, "  %s\n", n)
		}
	}
	section("General topics", general)
	section("Option topics", options)
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}

// helpCommand answers `help`, `help topics`, `help <topic>` and
// `help <command>`, in that order.
func (tm *TopicManager) helpCommand(root *cobra.Command) *cobra.Command {
	commandHelp := root.HelpFunc()
	app := root.Name()

	return &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: fmt.Sprintf("Help for any command or topic.\n\nList the topics with:\n  %s help topics", app),
		// topics may be spelled as flags
		DisableFlagParsing: true,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			words := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					words = append(words, c.Name())
				}
			}
			return append(words, tm.ListTopics()...), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				commandHelp(root, nil)
			case args[0] == "topics":
				tm.writeIndex(out, app)
			default:
				if topic, ok := tm.GetTopic(args[0]); ok {
					tm.Render(out, topic)
					return
				}
				target, _, err := root.Find(args)
				if err != nil || target == nil {
					target = root
				}
				commandHelp(target, nil)
			}
		},
	}
}

// Initialize loads the topics in fsys and installs a help command on
// rootCmd that serves them next to command help.
func Initialize(rootCmd *cobra.Command, fsys fs.FS, opts Options) (*TopicManager, error) {
	tm, err := New(fsys, opts)
	if err != nil {
		return nil, err
	}

	help := tm.helpCommand(rootCmd)
	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
		}
	}
	rootCmd.AddCommand(help)
	rootCmd.SetHelpCommand(help)
	return tm, nil
}
