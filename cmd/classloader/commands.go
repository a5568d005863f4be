package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"classloader/internal/common"
	"classloader/internal/config"
	"classloader/internal/diagnostic"
)

var (
	errInvalidConfig = errors.New("invalid config")
	errNotLoaded     = errors.New("some classes could not be loaded")
)

func resolveClasses(ctx context.Context, s *config.Setup, classes []string, dump bool) error {
	out := output(ctx)

	if dump {
		for _, class := range classes {
			spew.Fdump(out, s.Resolver.Explain(class))
		}
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Class", "Kind", "Candidate"})
	for _, class := range classes {
		res := s.Resolver.Explain(class)
		if common.IsEmpty(res.Candidates) {
			table.Append([]string{res.Class, res.Kind.String(), "-"})
			continue
		}
		for _, candidate := range res.Candidates {
			table.Append([]string{res.Class, res.Kind.String(), candidate})
		}
	}
	table.Render()

	return nil
}

func explainClass(ctx context.Context, s *config.Setup, class string) error {
	out := output(ctx)
	res := s.Resolver.Explain(class)

	fmt.Fprintln(out, "class:", res.Class)
	fmt.Fprintln(out, "kind:", res.Kind)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Candidate", "Resolved"})
	for i, candidate := range res.Candidates {
		resolved, ok := s.Search.Resolve(candidate)
		if !ok {
			resolved = "-"
		}
		table.Append([]string{fmt.Sprint(i + 1), candidate, resolved})
	}
	table.Render()

	printDiagnostics(ctx, res.Diagnostics)

	return nil
}

func loadClasses(ctx context.Context, s *config.Setup, classes []string) error {
	out := output(ctx)
	missing := 0

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Class", "Path", "Size"})
	for _, class := range classes {
		res, err := s.Loader.LoadResult(class)
		if err != nil {
			return err
		}
		if !res.Loaded() {
			missing++
			table.Append([]string{class, "not found", "-"})
			continue
		}
		src, _ := s.Sources.Get(res.Path)
		table.Append([]string{class, res.Path, humanize.Bytes(uint64(len(src.Data)))})
	}
	table.Render()

	if missing > 0 {
		return errNotLoaded
	}
	return nil
}

func checkConfig(ctx context.Context, logger log.Logger, f *config.File, s *config.Setup) error {
	out := output(ctx)

	d := config.Validate(f)
	d.Merge(*s.Verify(pinnedClasses(f, s)))

	state := "disabled"
	if s.Resolver.GlobalClassPathEnabled() {
		state = "enabled"
	}
	fmt.Fprintln(out, "global class path:", state)

	if prefixes := s.Resolver.Prefixes(); len(prefixes) > 0 {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Prefix", "Dir"})
		for _, p := range prefixes {
			table.Append([]string{p.Prefix, p.Dir})
		}
		table.Render()
	}

	printDiagnostics(ctx, *d)

	if d.HasErrors() {
		level.Error(logger).Log("msg", "config is invalid", "err", d.Error())
		return errInvalidConfig
	}
	fmt.Fprintln(out, "config OK")
	return nil
}

// pinnedClasses lists every class with a fixed path, sorted.
func pinnedClasses(f *config.File, s *config.Setup) []string {
	classes := lo.Keys(s.Resolver.Classes())
	if s.Resolver.GlobalClassPathEnabled() {
		classes = append(classes, lo.Keys(f.ClassPath)...)
	}
	classes = lo.Uniq(classes)
	sort.Strings(classes)
	return classes
}

func dumpConfig(ctx context.Context, fs afero.Fs, f *config.File, path string) error {
	if path != "" {
		return config.WriteFile(fs, f, path)
	}

	data, err := config.Marshal(f)
	if err != nil {
		return err
	}
	_, err = output(ctx).Write(data)
	return err
}

func printDiagnostics(ctx context.Context, d diagnostic.Diagnostics) {
	all := d.All()
	if len(all) == 0 {
		return
	}

	table := tablewriter.NewWriter(output(ctx))
	table.SetHeader([]string{"Severity", "Code", "Message", "Did you mean"})
	table.SetAutoWrapText(false)
	for _, diag := range all {
		subject := diag
		subject.Code = ""
		table.Append([]string{diag.Severity.String(), diag.Code, subject.String(), strings.Join(diag.Suggestions, ", ")})
	}
	table.Render()
}
