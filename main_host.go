package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"zwplot/app"
	"zwplot/hal"
	"zwplot/internal/buildinfo"
	"zwplot/raster"
	"zwplot/sweep"
)

func main() {
	var (
		cfg     hal.HeadlessConfig
		appCfg  app.Config
		size    int
		zoom    int
		outPath string
		scale   int
		version bool
	)
	def := sweep.DefaultParametric()
	flag.StringVar(&appCfg.Curve, "curve", "cos(t) + i*sin(t)", "Parametric curve in t.")
	flag.StringVar(&appCfg.ZFunc, "zfunc", "", "Function of z sampled along the real axis of the z-plane (overrides -curve).")
	flag.StringVar(&appCfg.Map, "map", "z", "Mapping w = f(z).")
	flag.StringVar(&appCfg.ZView, "zview", "-10,10,-10,10", "z-plane bounds: minX,maxX,minY,maxY.")
	flag.StringVar(&appCfg.WView, "wview", "-10,10,-10,10", "w-plane bounds: minX,maxX,minY,maxY.")
	flag.Float64Var(&appCfg.Sweep.TMin, "tmin", def.TMin, "Parametric sweep start.")
	flag.Float64Var(&appCfg.Sweep.TMax, "tmax", def.TMax, "Parametric sweep end.")
	flag.Float64Var(&appCfg.Sweep.Step, "step", def.Step, "Parametric sweep step.")
	flag.IntVar(&size, "size", app.DefaultPlaneSize, "Side of each plane in pixels.")
	flag.IntVar(&zoom, "zoom", 2, "Window scale (window mode).")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever, 1 with -out).")
	flag.StringVar(&outPath, "out", "", "Write the final frame as PNG (headless mode).")
	flag.IntVar(&scale, "scale", 1, "PNG upscale factor.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println("zwplot", buildinfo.Long())
		return
	}
	if size <= 0 {
		fatalf("invalid -size %d", size)
	}
	if scale < 1 {
		fatalf("invalid -scale %d", scale)
	}
	if outPath != "" && !cfg.Enabled {
		fatalf("-out requires -headless")
	}

	fbW, fbH := app.FramebufferSize(size, int(raster.DefaultFont().Height))
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, appCfg) }

	if cfg.Enabled {
		cfg.Width, cfg.Height = fbW, fbH
		if outPath != "" {
			if cfg.Ticks == 0 {
				cfg.Ticks = 1
			}
			cfg.Done = func(h hal.HAL) error { return writePNG(outPath, h, scale) }
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{Width: fbW, Height: fbH, Zoom: zoom}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writePNG(path string, h hal.HAL, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := hal.EncodePNG(f, h.Display().Framebuffer(), scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	h.Logger().WriteLineString("zwplot: wrote path=" + path)
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
