package trainwatch_test

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/afero"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch"
)

func ExampleRun() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := trainwatch.Run(ctx, "carracing/no_shield/seed1",
		trainwatch.WithPollInterval(10*time.Second),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func ExampleReadFile() {
	fsys := afero.NewOsFs()
	for rec, err := range trainwatch.ReadFile(context.Background(), fsys, "carracing/no_shield/seed1/progress.csv") {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if rec.Kind == trainwatch.KindData {
			fmt.Println(rec.Text)
		}
	}
}

func ExampleShow() {
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "run/progress.csv", []byte("r,reward\n1.5\n2.0\n"), 0o644)

	if err := trainwatch.Show(context.Background(), "run",
		trainwatch.WithFs(fsys), trainwatch.WithOutput(os.Stdout)); err != nil {
		fmt.Println(err)
	}
	// Output:
	// r,reward
	// --------------------------------------------------------------------------------
	// 1.5
	// 2.0
}
