package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/binzume/fbxaxis/converter"
	"github.com/binzume/fbxaxis/fbx"
)

func printSystem(label string, system fbx.AxisSystem) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", label, converter.Name(system))
	fmt.Fprintf(os.Stderr, "  (%s)\n", converter.Describe(system))
}

func usage(fs *flag.FlagSet, targets []*converter.Target) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input.fbx> <output.fbx>\n", fs.Name())
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Converts FBX axis system to specified coordinate system.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Target coordinate systems:\n")
		for _, t := range targets {
			fmt.Fprintf(os.Stderr, "  %-14s %s\n", t.Name, t.Description)
			fmt.Fprintf(os.Stderr, "                 (%s)\n", converter.Describe(t.System))
		}
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "The default deep conversion rewrites every transform, geometry\n")
		fmt.Fprintf(os.Stderr, "and animation curve. -shallow only adjusts the root transforms.\n")
	}
}

func run(args []string) int {
	fs := flag.NewFlagSet("fbxaxis", flag.ContinueOnError)
	var targetName string
	fs.StringVar(&targetName, "t", "maya-y-up", "target coordinate system")
	fs.StringVar(&targetName, "target", "maya-y-up", "target coordinate system")
	shallow := fs.Bool("shallow", false, "convert root transforms only instead of the whole scene")
	format := fs.String("format", "binary", "output format (binary or ascii)")
	presets := fs.String("presets", "", "yaml file with extra target systems")
	glb := fs.String("glb", "", "also write a glb preview to the given path")
	dump := fs.Bool("dump", false, "dump the converted document to stdout")

	targets := converter.Targets()
	fs.Usage = usage(fs, targets)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}
	if *presets != "" {
		extra, err := converter.LoadTargetPresets(*presets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to load presets: %v\n", err)
			return 1
		}
		for _, t := range extra {
			if converter.FindTarget(targets, t.Name) != nil {
				fmt.Fprintf(os.Stderr, "Error: Preset target %q conflicts with an existing target\n", t.Name)
				return 1
			}
			targets = append(targets, t)
		}
	}
	// The output may be omitted when only dumping.
	if fs.NArg() < 2 && !(*dump && fs.NArg() == 1) {
		fs.Usage()
		return 1
	}
	input := fs.Arg(0)
	output := fs.Arg(1)

	target := converter.FindTarget(targets, targetName)
	if target == nil {
		fmt.Fprintf(os.Stderr, "Error: Unknown target coordinate system: %s\n", targetName)
		fmt.Fprintf(os.Stderr, "Use --help to see available systems.\n")
		return 1
	}

	fmt.Fprintf(os.Stderr, "Loading: %s\n", input)
	doc, err := fbx.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load scene: %v\n", err)
		return 1
	}

	current := doc.GetAxisSystem()
	printSystem("Current axis system", current)

	if current == target.System {
		fmt.Fprintf(os.Stderr, "Axis system is already %s, no conversion needed.\n", target.Name)
	} else {
		printSystem("Target axis system", target.System)
		if *shallow {
			fmt.Fprintf(os.Stderr, "Converting root transforms (shallow)...\n")
			fbx.ConvertScene(doc, target.System)
		} else {
			fmt.Fprintf(os.Stderr, "Converting the whole scene...\n")
			fbx.DeepConvertScene(doc, target.System)
		}
		printSystem("New axis system", doc.GetAxisSystem())
	}

	if *dump {
		doc.Dump(os.Stdout, false)
	}

	if output != "" {
		writer := fbx.FindWriterFormat(*format)
		if writer == nil {
			writer = fbx.WriterFormats()[0]
			fmt.Fprintf(os.Stderr, "Unknown output format %q, using %s\n", *format, writer.Description)
		}
		fmt.Fprintf(os.Stderr, "Saving: %s\n", output)
		w, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to create output: %v\n", err)
			return 1
		}
		if err := writer.Write(doc, w); err != nil {
			w.Close()
			fmt.Fprintf(os.Stderr, "Error: Failed to save scene: %v\n", err)
			return 1
		}
		if err := w.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to save scene: %v\n", err)
			return 1
		}
	}

	if *glb != "" {
		fmt.Fprintf(os.Stderr, "Saving preview: %s\n", *glb)
		if err := converter.FBXToGLB(doc, *glb); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to save preview: %v\n", err)
			return 1
		}
	}

	fmt.Fprintln(os.Stderr, "Done!")
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
