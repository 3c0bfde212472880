package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"sceneforge/internal/assets"
	"sceneforge/internal/components"
	"sceneforge/internal/engine"
	"sceneforge/internal/exporter"
	"sceneforge/internal/project"
	"sceneforge/internal/world"
)

var errUsage = errors.New("invalid arguments")

func run(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "info":
		if len(args) != 1 {
			return errUsage
		}
		return runInfo(w, args[0])
	case "convert":
		if len(args) != 2 {
			return errUsage
		}
		return runConvert(w, args[0], args[1])
	case "init":
		if len(args) != 2 {
			return errUsage
		}
		return runInit(w, args[0], args[1])
	case "add":
		if len(args) != 2 {
			return errUsage
		}
		return runAdd(w, args[0], args[1])
	case "list":
		if len(args) != 1 {
			return errUsage
		}
		return runList(w, args[0])
	case "check":
		if len(args) != 1 {
			return errUsage
		}
		return runCheck(w, args[0])
	case "asset":
		if len(args) != 4 {
			return errUsage
		}
		return runAsset(w, args[0], args[1], args[2], args[3])
	case "find":
		if len(args) != 2 {
			return errUsage
		}
		return runFind(w, args[0], args[1])
	case "skybox":
		if len(args) != 3 {
			return errUsage
		}
		return runSkybox(w, args[0], args[1], args[2])
	}
	return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

func runInfo(w io.Writer, path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	s, err := exporter.LoadScene(path)
	if err != nil {
		return err
	}
	f, _ := exporter.FormatFromPath(path)
	fmt.Fprintf(w, "Name:     %s\n", s.Name())
	fmt.Fprintf(w, "ID:       %d\n", s.ID())
	fmt.Fprintf(w, "Entities: %s\n", humanize.Comma(int64(s.EntityCount())))
	fmt.Fprintf(w, "Terrains: %s\n", humanize.Comma(int64(s.TerrainCount())))
	fmt.Fprintf(w, "Format:   %s\n", f)
	fmt.Fprintf(w, "Size:     %s\n", humanize.Bytes(uint64(fi.Size())))
	return nil
}

// runFind lists the objects of a scene file whose name or one of whose tags
// matches query.
func runFind(w io.Writer, path, query string) error {
	rec, err := exporter.LoadScene(path)
	if err != nil {
		return err
	}
	scene, _ := world.ImportScene(rec)
	found := scene.FindByTag(query)
	if g := scene.FindByName(query); g != nil && !slices.Contains(found, g) {
		found = append([]*engine.GameObject{g}, found...)
	}
	if len(found) == 0 {
		return fmt.Errorf("no object named or tagged %q", query)
	}
	for _, g := range found {
		var id int64
		if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil {
			id = mr.InstanceID
		} else if tc := engine.GetComponent[*components.Terrain](g); tc != nil {
			id = tc.InstanceID
		}
		p := g.Transform.Position
		fmt.Fprintf(w, "%d %q at (%g, %g, %g)\n", id, g.Name, p.X, p.Y, p.Z)
	}
	return nil
}

func runConvert(w io.Writer, in, out string) error {
	s, err := exporter.LoadScene(in)
	if err != nil {
		return err
	}
	if err := exporter.SaveScene(out, s); err != nil {
		return err
	}
	fmt.Fprintf(w, "Converted %s to %s\n", in, out)
	return nil
}

func runInit(w io.Writer, dir, name string) error {
	if _, err := project.Create(dir, name); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created project %q in %s\n", name, dir)
	return nil
}

func runAdd(w io.Writer, dir, path string) error {
	p, err := project.Open(dir)
	if err != nil {
		return err
	}
	s, err := exporter.LoadScene(path)
	if err != nil {
		return err
	}
	if err := p.AddScene(s); err != nil {
		return err
	}
	fmt.Fprintf(w, "Added scene %q with id %d\n", s.Name(), s.ID())
	return nil
}

func runList(w io.Writer, dir string) error {
	p, err := project.Open(dir)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFILE\tSKYBOX")
	for _, e := range p.Scenes() {
		skybox := "-"
		if e.SkyboxID != 0 {
			skybox = strconv.FormatInt(e.SkyboxID, 10)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.File, skybox)
	}
	return tw.Flush()
}

func runCheck(w io.Writer, dir string) error {
	p, err := project.Open(dir)
	if err != nil {
		return err
	}
	im := world.Importer{Assets: p.Assets}
	var failed int
	for _, e := range p.Scenes() {
		s, err := p.ReadScene(e.ID)
		if err != nil {
			fmt.Fprintf(w, "%d %s: %s\n", e.ID, e.Name, err)
			failed++
			continue
		}
		_, stats := im.ImportScene(s)
		line := fmt.Sprintf("%d %s: %d entities, %d terrains", e.ID, e.Name, stats.Entities, stats.Terrains)
		ok := true
		if stats.Missing > 0 {
			line += fmt.Sprintf(", %d missing assets", stats.Missing)
			ok = false
		}
		if e.SkyboxID != 0 {
			if _, found := p.Assets.Skybox(e.SkyboxID); !found {
				line += fmt.Sprintf(", skybox %d missing", e.SkyboxID)
				ok = false
			}
		}
		fmt.Fprintln(w, line)
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenes have problems", failed, len(p.Scenes()))
	}
	return nil
}

func runAsset(w io.Writer, dir, kind, id, path string) error {
	var k assets.Kind
	if err := k.UnmarshalText([]byte(kind)); err != nil {
		return err
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid asset id %q", id)
	}
	p, err := project.Open(dir)
	if err != nil {
		return err
	}
	if err := p.AddAsset(assets.Asset{ID: n, Kind: k, Path: path}); err != nil {
		return err
	}
	fmt.Fprintf(w, "Registered %s %d: %s\n", k, n, path)
	return nil
}

func runSkybox(w io.Writer, dir, sceneID, skyboxID string) error {
	sid, err := strconv.ParseInt(sceneID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid scene id %q", sceneID)
	}
	bid, err := strconv.ParseInt(skyboxID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid skybox id %q", skyboxID)
	}
	p, err := project.Open(dir)
	if err != nil {
		return err
	}
	if err := p.SetSkybox(sid, bid); err != nil {
		return err
	}
	fmt.Fprintf(w, "Scene %d uses skybox %d\n", sid, bid)
	return nil
}
