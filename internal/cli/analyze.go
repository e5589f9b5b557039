package cli

import (
	"context"
	goerrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/analyzer"
	"github.com/depscope/depscope/pkg/depgraph"
	"github.com/depscope/depscope/pkg/render/nodelink"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	configPath  string // path to the TOML configuration
	interactive bool   // pick the root package from a list instead
	svg         bool   // additionally render the exported DOT as SVG
}

// newAnalyzeCmd creates the analyze command, the main entry point of the
// tool: it loads the configuration, resolves the dependency closure of the
// configured package over the built-in graph and prints the requested
// renderings.
func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the configured package's dependency graph",
		Long: `Analyze resolves the transitive dependency closure of the package named
in the configuration file and prints a closure listing, a transitive
dependency summary and, when enabled, an ASCII tree and a Graphviz DOT
export.

With reverse_mode enabled the walk follows dependents instead of
dependencies. With test_repository_mode enabled the cyclic sample graph is
analyzed to demonstrate cycle detection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.toml", "path to config file")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the root package interactively")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "also render the DOT export as SVG")

	return cmd
}

func runAnalyze(ctx context.Context, opts analyzeOpts) error {
	logger := loggerFromContext(ctx).With("run", runID())

	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	printParameters(cfg)

	req := analyzer.Request{
		Package:     cfg.PackageName,
		TestMode:    cfg.TestRepositoryMode,
		Reverse:     cfg.ReverseMode,
		ASCIITree:   cfg.ASCIITreeOutput,
		GraphExport: cfg.GraphExport,
	}
	src := analyzer.SourceFor(req)

	if opts.interactive {
		pkg, err := pickPackage(src)
		if err != nil {
			return err
		}
		if pkg == "" {
			printWarning("No package selected")
			return nil
		}
		req.Package = pkg
	}

	logger.Debugf("analyzing %s (reverse=%v)", req.Package, req.Reverse)
	p := newProgress(logger)

	rep, err := analyzer.Run(req, src)
	var cycleErr *depgraph.CycleError
	if goerrors.As(err, &cycleErr) {
		if !req.TestMode {
			return err
		}
		// Deliberate demonstration: report the cycle and fall back to the
		// cycle-tolerant summary instead of aborting.
		printWarning("%s", cycleErr.Error())
		printTransitive(req.Package, rep.Transitive)
		return nil
	}
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Resolved %d packages", rep.Closure.Len()))

	printClosure(rep.Closure)
	printTransitive(req.Package, rep.Transitive)
	if req.Reverse {
		printDependents(req.Package, rep.Dependents)
	}
	if req.ASCIITree {
		fmt.Println()
		printTitle("Dependency tree")
		fmt.Print(rep.Tree)
	}
	if req.GraphExport {
		if err := nodelink.Save(rep.DOT, rep.ExportFile); err != nil {
			return err
		}
		printSuccess("Exported graph description")
		printFile(rep.ExportFile)
		if opts.svg {
			svgFile := strings.TrimSuffix(rep.ExportFile, ".dot") + ".svg"
			svg, err := nodelink.RenderSVG(rep.DOT)
			if err != nil {
				return err
			}
			if err := nodelink.Save(string(svg), svgFile); err != nil {
				return err
			}
			printFile(svgFile)
		}
	}
	return nil
}

// runID returns a short identifier for correlating log lines of one run.
func runID() string {
	return uuid.NewString()[:8]
}

// printParameters echoes the loaded configuration before the analysis.
func printParameters(cfg *Config) {
	printTitle("Configuration")
	printKeyValue("package_name", cfg.PackageName)
	printKeyValue("repository_url", cfg.RepositoryURL)
	printKeyValue("test_repository_mode", strconv.FormatBool(cfg.TestRepositoryMode))
	printKeyValue("ascii_tree_output", strconv.FormatBool(cfg.ASCIITreeOutput))
	printKeyValue("reverse_mode", strconv.FormatBool(cfg.ReverseMode))
	printKeyValue("graph_export", strconv.FormatBool(cfg.GraphExport))
	fmt.Println()
}

// printClosure lists each package of the closure with its recorded edges.
func printClosure(closure *depgraph.Graph) {
	printTitle("Closure")
	for _, pkg := range closure.Packages() {
		deps, _ := closure.EdgesOf(pkg)
		if len(deps) == 0 {
			printDetail("%s", pkg)
			continue
		}
		printDetail("%s %s %s", pkg, iconArrow, strings.Join(deps, ", "))
	}
}

func printTransitive(pkg string, transitive []string) {
	fmt.Println()
	printTitle(fmt.Sprintf("Transitive dependencies of %s: %d", pkg, len(transitive)))
	for _, dep := range transitive {
		printDetail("%s", dep)
	}
}

func printDependents(pkg string, dependents []string) {
	fmt.Println()
	printTitle(fmt.Sprintf("Direct dependents of %s: %d", pkg, len(dependents)))
	for _, dep := range dependents {
		printDetail("%s", dep)
	}
}
