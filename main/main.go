package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sort"

	plt "github.com/phil-mansfield/pyplot"
	"gopkg.in/gcfg.v1"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/data"
	"github.com/ltorresi/jetsed/fit"
	"github.com/ltorresi/jetsed/math/integrate"
	"github.com/ltorresi/jetsed/targets"
)

func main() {
	var (
		sed, fitMode, exampleConfig string
	)
	vars := map[string]*string{
		"SED":           &sed,
		"Fit":           &fitMode,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&sed, "SED", "",
		"Configuration file for [SED] mode.",
	)
	flag.StringVar(
		&fitMode, "Fit", "",
		"Configuration file for [Fit] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'SED' and 'Fit'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "SED":
		con := &SEDConfig{}
		if err := gcfg.ReadFileInto(con, sed); err != nil {
			log.Fatal(err.Error())
		}
		if err := sedMain(con); err != nil {
			log.Fatal(err.Error())
		}

	case "Fit":
		con := &FitConfig{}
		if err := gcfg.ReadFileInto(con, fitMode); err != nil {
			log.Fatal(err.Error())
		}
		if err := fitMain(con); err != nil {
			log.Fatal(err.Error())
		}

	case "ExampleConfig":
		switch exampleConfig {
		case "SED":
			fmt.Print(exampleSEDConfig)
		case "Fit":
			fmt.Print(exampleFitConfig)
		default:
			log.Fatalf(
				"Unknown 'ExampleConfig' argument '%s'.", exampleConfig,
			)
		}
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setModes := []string{}
	for name, val := range vars {
		if *val != "" {
			setModes = append(setModes, name)
		}
	}
	if len(setModes) == 0 {
		return "", fmt.Errorf(
			"No mode selected. Run with one of -SED, -Fit, -ExampleConfig.",
		)
	} else if len(setModes) > 1 {
		sort.Strings(setModes)
		return "", fmt.Errorf("Multiple modes selected: %v.", setModes)
	}
	return setModes[0], nil
}

func sedMain(con *SEDConfig) error {
	if err := con.Blob.CheckInit(); err != nil {
		return err
	}
	if err := con.Grid.CheckInit(); err != nil {
		return err
	}

	bc := con.Blob
	volume := 4 * math.Pi / 3 * bc.R * bc.R * bc.R
	dist, err := con.Electrons.distribution(volume)
	if err != nil {
		return err
	}
	bl, err := blob.New(bc.R, bc.Z, bc.Delta, bc.Gamma, bc.B, dist)
	if err != nil {
		return err
	}
	log.Println(bl)

	tgts := map[string]targets.PhotonField{}
	for name, tc := range con.Target {
		t, err := tc.target(bc.Z)
		if err != nil {
			return err
		}
		tgts[name] = t
	}

	nu := integrate.LogSpace(con.Grid.NuMin, con.Grid.NuMax, con.Grid.Points)
	total := make([]float64, len(nu))

	names := make([]string, 0, len(con.Process))
	for name := range con.Process {
		names = append(names, name)
	}
	sort.Strings(names)

	components := map[string][]float64{}
	for _, name := range names {
		proc, err := con.Process[name].process(name, bl, tgts)
		if err != nil {
			return err
		}
		flux := proc.SEDFlux(nu)
		components[name] = flux
		for i := range total {
			total[i] += flux[i]
		}
		log.Printf("computed %s", proc)
	}

	absNames := make([]string, 0, len(con.Absorption))
	for name := range con.Absorption {
		absNames = append(absNames, name)
	}
	sort.Strings(absNames)
	for _, name := range absNames {
		abs, err := con.Absorption[name].absorber(name, bl, tgts)
		if err != nil {
			return err
		}
		att := abs.Attenuation(nu)
		for i := range total {
			total[i] *= att[i]
		}
		log.Printf("applied %s", abs)
	}

	if con.Output.File != "" {
		if err := writeSED(con.Output.File, nu, total, components, names); err != nil {
			return err
		}
	}
	if con.Output.Plot {
		plt.Reset()
		plt.Plot(nu, total, "k", plt.LW(2))
		for _, name := range names {
			plt.Plot(nu, components[name])
		}
		plt.XLabel(`$\nu$ [Hz]`, plt.FontSize(16))
		plt.YLabel(`$\nu F_\nu$ [erg/s/cm$^2$]`, plt.FontSize(16))
		plt.XScale("log")
		plt.YScale("log")
		plt.Show()
	}
	return nil
}

func writeSED(
	fname string, nu, total []float64,
	components map[string][]float64, names []string,
) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# nu [Hz], total nuFnu [erg/s/cm^2]")
	for _, name := range names {
		fmt.Fprintf(f, ", %s", name)
	}
	fmt.Fprintln(f)
	for i := range nu {
		fmt.Fprintf(f, "%12.6g %12.6g", nu[i], total[i])
		for _, name := range names {
			fmt.Fprintf(f, " %12.6g", components[name][i])
		}
		fmt.Fprintln(f)
	}
	return nil
}

func fitMain(con *FitConfig) error {
	fc := &con.Fit

	var reg *data.Registry
	var err error
	if fc.Registry != "" {
		if reg, err = data.ReadRegistry(fc.Registry); err != nil {
			return err
		}
	}
	ds, err := data.Load(fc.Data, reg)
	if err != nil {
		return err
	}
	log.Printf("loaded %d flux points from '%s'", len(ds.Points), fc.Data)

	var model fit.Model
	switch fc.Model {
	case "SSC":
		model = fit.NewSSCModel(fc.Z)
	case "ECDT":
		torus, err := targets.NewRingDustTorus(fc.LDisk, fc.Xi, fc.T, 0)
		if err != nil {
			return err
		}
		model = fit.NewECModel(fc.Z, torus)
	default:
		return fmt.Errorf("Unknown [Fit] 'Model' value '%s'.", fc.Model)
	}

	fitter, err := fit.NewFitter(model, ds)
	if err != nil {
		return err
	}
	fitter.MaxIterations = fc.MaxIterations
	switch fc.Method {
	case "", "lm":
		fitter.Method = fit.LevenbergMarquardt
	case "nm":
		fitter.Method = fit.NelderMead
	default:
		return fmt.Errorf("Unknown [Fit] 'Method' value '%s'.", fc.Method)
	}

	res, err := fitter.Run()
	if err != nil {
		return err
	}
	fmt.Println(res)
	for _, p := range model.Params() {
		fmt.Println(" ", p)
	}
	return nil
}
