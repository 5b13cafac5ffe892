package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/backend"
	"vincit.fi/imageli/common"
	"vincit.fi/imageli/common/imagereader"
	"vincit.fi/imageli/common/logger"
	"vincit.fi/imageli/common/util"
)

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	if len(params.References()) == 0 {
		fmt.Fprintln(os.Stderr, "usage: imageli [flags] <image>...")
		os.Exit(2)
	}

	if err := run(params); err != nil {
		logger.Error.Print(err)
		os.Exit(1)
	}
}

func run(params *common.Params) error {
	ctx := context.Background()

	stores, err := backend.InitializeStores(params.MediaDb())
	if err != nil {
		return err
	}
	defer stores.Close()

	brokers := backend.InitializeEventBrokers(params.EventQueueSize())
	subscribe(brokers)
	defer brokers.Close()

	references := uniqueReferences(params.References())
	if params.Mode() == common.ModeIndex {
		return index(stores, brokers, references)
	}

	services, err := backend.InitializeServices(ctx, params, stores, brokers)
	if err != nil {
		return err
	}
	defer services.Close()

	failed := 0
	for _, reference := range references {
		if err := process(ctx, params, services, reference, len(references) > 1); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(references))
	}
	return nil
}

func uniqueReferences(references []string) []string {
	seen := util.NewSet[string]()
	unique := make([]string, 0, len(references))
	for _, reference := range references {
		if seen.Add(reference) {
			unique = append(unique, reference)
		} else {
			logger.Debug.Printf("Skipping duplicate '%s'", reference)
		}
	}
	return unique
}

func process(ctx context.Context, params *common.Params, services *backend.Services, reference string, multiple bool) error {
	img, err := services.Screen.SelectImage(reference)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", reference, err)
		return err
	}

	switch params.Mode() {
	case common.ModeNormalize:
		out := outputPath(params.Out(), img.Path(), multiple)
		if err := imagereader.WriteImage(out, img.Image()); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", reference, err)
			return err
		}
		fmt.Printf("%s -> %s (%dx%d, %s)\n", reference, out, img.Width(), img.Height(), img.Orientation())
		return nil
	case common.ModeText, common.ModeLabels:
		timeoutCtx, cancel := context.WithTimeout(ctx, params.Timeout())
		defer cancel()

		future, err := services.Screen.Recognize(timeoutCtx, img)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", reference, err)
			return err
		}
		result, err := future.Await(timeoutCtx)
		if errors.Is(err, apitype.ErrNoTextFound) {
			fmt.Printf("%s:\nNo text found\n", reference)
			return nil
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", reference, err)
			return err
		}
		fmt.Printf("%s:\n%s\n", reference, result)
		return nil
	default:
		return fmt.Errorf("unknown mode '%s'", params.Mode())
	}
}

func index(stores *backend.Stores, brokers *backend.Brokers, paths []string) error {
	if removed, err := stores.Prune(); err != nil {
		return err
	} else if removed > 0 {
		logger.Info.Printf("Removed %d missing files from the media index", removed)
	}

	references, err := stores.IndexAll(paths, api.NewSenderProgressReporter(brokers.Broker))
	for i, reference := range references {
		if reference != "" {
			fmt.Printf("%s %s\n", reference, paths[i])
		}
	}
	return err
}

// outputPath places the upright image next to the source unless -out is
// given. With several inputs -out is a directory.
func outputPath(out string, source string, multiple bool) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + "-upright.png"
	if out == "" {
		return filepath.Join(filepath.Dir(source), name)
	}
	if multiple || filepath.Ext(out) == "" {
		return filepath.Join(out, name)
	}
	return out
}

func subscribe(brokers *backend.Brokers) {
	broker := brokers.Broker
	_ = broker.Subscribe(api.ImageChanged, func(command *api.ImageChangedCommand) {
		logger.Debug.Printf("Image changed: %s", command.Image)
	})
	_ = broker.Subscribe(api.ControlsChanged, func(command *api.ControlsCommand) {
		logger.Trace.Printf("Controls enabled: %t", command.Enabled)
	})
	_ = broker.Subscribe(api.RecognitionStarted, func(command *api.RecognitionStartedCommand) {
		logger.Debug.Printf("Recognition %s started (%s)", command.RequestId, command.Kind)
	})
	_ = broker.Subscribe(api.RecognitionFinished, func(command *api.RecognitionFinishedCommand) {
		logger.Debug.Printf("Recognition %s finished", command.RequestId)
	})
	_ = broker.Subscribe(api.ProgressUpdated, func(command *api.UpdateProgressCommand) {
		logger.Debug.Printf("%s %d/%d", command.Name, command.Current, command.Total)
	})
	_ = broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		logger.Warn.Printf("%s", command.Message)
	})
}
