package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path"
	"runtime"
	"sort"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/huygens"
	"github.com/phil-mansfield/huygens/io"
	"github.com/phil-mansfield/huygens/render"
)

func main() {
	var (
		simulateStr   string
		exampleConfig string
	)
	vars := map[string]*string{
		"Simulate":      &simulateStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.IntVar(
		&huygens.NumCores, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores.",
	)
	flag.StringVar(
		&simulateStr, "Simulate", "",
		"Configuration file for [Simulate] mode. Computes the frame "+
			"sequence, writes .hwf frame files, and optionally a GIF.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Simulate'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Simulate":
		wrap := io.DefaultSimulationWrapper()
		if err := gcfg.ReadFileInto(wrap, simulateStr); err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Simulation
		if err := con.CheckInit(); err != nil {
			log.Fatal(err.Error())
		}

		wavelets, err := waveletConfigs(wrap)
		if err != nil {
			log.Fatal(err.Error())
		}

		simulateMain(con, wavelets)

	case "ExampleConfig":
		switch exampleConfig {
		case "Simulate":
			fmt.Println(io.ExampleSimulationFile)
		default:
			log.Fatalf(
				"Unrecognized 'ExampleConfig' argument, '%s'.", exampleConfig,
			)
		}
	}
}

// getModeName returns the name of the single mode flag the user set, and a
// descriptive error if they set none or several.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}
	for name, val := range vars {
		if *val != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf(
			"No mode selected. Set exactly one of the mode flags " +
				"(-Simulate, -ExampleConfig).",
		)
	} else if len(setNames) > 1 {
		sort.Strings(setNames)
		return "", fmt.Errorf(
			"The mode flags %v cannot be combined.", setNames,
		)
	}

	return setNames[0], nil
}

// waveletConfigs validates and collects the wavelet sections of the config
// file, sorted by section name so runs do not depend on map order, then
// appends rows from the wavelet table if one was given.
func waveletConfigs(wrap *io.SimulationWrapper) ([]io.WaveletConfig, error) {
	names := make([]string, 0, len(wrap.Wavelet))
	for name := range wrap.Wavelet {
		names = append(names, name)
	}
	sort.Strings(names)

	cons := make([]io.WaveletConfig, 0, len(names))
	for _, name := range names {
		con := wrap.Wavelet[name]
		if err := con.CheckInit(name); err != nil {
			return nil, err
		}
		cons = append(cons, *con)
	}

	if wrap.Simulation.WaveletTable != "" {
		tableCons, err := io.ReadWaveletTable(wrap.Simulation.WaveletTable)
		if err != nil {
			return nil, err
		}
		cons = append(cons, tableCons...)
	}

	if len(cons) == 0 {
		return nil, fmt.Errorf(
			"Config contains no [Wavelet] sections and no 'WaveletTable'.",
		)
	}

	return cons, nil
}

func simulateMain(con *io.SimulationConfig, cons []io.WaveletConfig) {
	g, err := huygens.NewGrid(
		con.XMin, con.XMax, con.YMin, con.YMax, con.XPixels, con.YPixels,
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	wavelets := make([]huygens.Wavelet, len(cons))
	for i := range cons {
		wavelets[i] = huygens.Wavelet{
			X0: cons[i].X, Y0: cons[i].Y, T0: cons[i].T0,
			Speed: cons[i].Speed, Wavelength: cons[i].Wavelength,
			Amplitude: cons[i].Amplitude, Phase: cons[i].Phase,
			Attenuate: cons[i].Attenuate,
		}
	}

	sim, err := huygens.NewSimulator(g, wavelets)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Println(sim)

	fr, err := sim.Run(con.TimeStart, con.TimeStop, con.TimeSteps)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err = os.MkdirAll(con.Output, 0755); err != nil {
		log.Fatal(err.Error())
	}

	loc := io.NewLocationInfo(
		con.XMin, con.XMax, con.YMin, con.YMax,
		g.Nx, g.Ny, g.Dx(), g.Dy(),
	)

	limit := con.ColorLimit
	gifFrames := []*image.Paletted{}

	for fr.Next() {
		log.Printf("Frame %4d/%d at t = %g", fr.Step()+1, fr.Len(), fr.Time())

		vals := fr.Vals()
		field := io.NewFieldInfo(fr.Step(), fr.Len(), fr.Time(), len(wavelets))
		fname := path.Join(
			con.Output, fmt.Sprintf("frame_%04d.hwf", fr.Step()),
		)
		if err = writeFrameFile(fname, vals, field, loc); err != nil {
			log.Fatal(err.Error())
		}

		if con.GIF == "" {
			continue
		}
		if limit == 0 {
			limit = render.Limit(vals)
		}
		img, err := render.Frame(vals, g.Nx, g.Ny, limit)
		if err != nil {
			log.Fatal(err.Error())
		}
		gifFrames = append(gifFrames, img)
	}

	if con.GIF != "" {
		f, err := os.Create(con.GIF)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer f.Close()

		if err = render.WriteGIF(f, gifFrames, con.GIFDelay); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote %s", con.GIF)
	}
}

func writeFrameFile(
	fname string, vals []float64, field io.FieldInfo, loc io.LocationInfo,
) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	return io.WriteFrame(vals, field, loc, f)
}
