package transcribe

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-transcript/cmd/atp/cmd/cli"
	"audio-transcript/internal/app"
	"audio-transcript/internal/app/audio"
	"audio-transcript/internal/app/errors"
	"audio-transcript/internal/app/model"
	"audio-transcript/internal/app/progress"
	"audio-transcript/internal/app/transcript"
	"audio-transcript/internal/app/transcript/export"
)

var (
	format     string
	outputPath string
	capability string
	modelName  string
	noProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, markdown, json or xlsx")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to this file instead of stdout (required for xlsx)")
	Cmd.Flags().StringVar(&capability, "capability", "", "speech capability, overrides the settings file (gemini, openai)")
	Cmd.Flags().StringVarP(&modelName, "model", "m", "", "model name, overrides the settings file")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable progress output")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file.mp3>",
	Short: "Transcribe one MP3 file",
	Long: `Transcribe one MP3 file into speaker turns.

- Only MP3 files are accepted, up to max_upload_mb
- The transcript is written to stdout unless --output is given`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := transcript.ParseFormat(format)
		if err != nil {
			return err
		}
		if f == transcript.FormatXLSX && outputPath == "" {
			return errors.RequiredField("output")
		}

		opts, err := cli.Load(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer opts.Logger.Sync()

		if err := cli.Override(opts.Settings, capability, modelName); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		t, meta, err := run(ctx, opts, args[0], progress.ShouldShow(noProgress))
		if err != nil {
			opts.Logger.Error("transcription failed",
				zap.String("file", args[0]),
				zap.String("kind", string(errors.KindOf(err))),
				zap.Error(err),
			)
			return err
		}

		return write(cmd.OutOrStdout(), f, meta, t)
	},
}

func run(ctx context.Context, opts app.Options, path string, showProgress bool) (model.Transcript, transcript.Metadata, error) {
	if key, variable := opts.Credential(); key == "" {
		return nil, transcript.Metadata{}, errors.MissingSetting(variable)
	}
	if err := checkFile(path, opts.Settings.MaxUploadBytes()); err != nil {
		return nil, transcript.Metadata{}, err
	}

	requester, err := app.InitializeRequester(ctx, opts)
	if err != nil {
		return nil, transcript.Metadata{}, err
	}

	bars := progress.NewManager(progress.Config{Enabled: showProgress})
	defer bars.Wait()

	name := filepath.Base(path)
	var read *progress.Bar
	payload, info, err := audio.EncodeFile(ctx, path, func(size int64, r io.Reader) io.Reader {
		read = bars.ReadBar(size, name)
		return read.ProxyReader(r)
	})
	if read != nil {
		if err != nil {
			read.Abort()
		} else {
			read.Done()
		}
	}
	if err != nil {
		return nil, transcript.Metadata{}, err
	}

	spinner := bars.Spinner(fmt.Sprintf("transcribing with %s", requester.Model()))
	t, err := requester.Transcribe(ctx, payload)
	if err != nil {
		spinner.Abort()
		return nil, transcript.Metadata{}, err
	}
	spinner.Done()

	opts.Logger.Debug("transcript received",
		zap.String("file", info.Name),
		zap.Int64("size", info.Size),
		zap.Int("turns", len(t)),
	)

	return t, transcript.Metadata{
		FileName:    info.Name,
		Capability:  requester.CapabilityName(),
		Model:       requester.Model(),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// checkFile applies the MP3-only policy and the size limit before reading
func checkFile(path string, maxBytes int64) error {
	stat, err := os.Stat(path)
	if err != nil {
		return errors.ErrFileReadFailed.With(err)
	}
	if stat.IsDir() {
		return errors.ErrFileReadFailed.With(fmt.Errorf("%s is a directory", path))
	}
	if maxBytes > 0 && stat.Size() > maxBytes {
		return errors.ErrFileTooLarge.With(fmt.Errorf("%d bytes exceeds the %d MB limit", stat.Size(), maxBytes>>20))
	}

	mediaType, err := audio.DetectMediaType(path)
	if err != nil {
		return err
	}
	if !audio.IsAccepted(mediaType) {
		return errors.ErrUnsupportedMediaType.With(fmt.Errorf("got %s", mediaType))
	}
	return nil
}

func write(stdout io.Writer, f transcript.Format, meta transcript.Metadata, t model.Transcript) error {
	if outputPath == "" {
		return transcript.Render(stdout, f, meta, t)
	}

	if filepath.Ext(outputPath) == "" {
		outputPath += f.Extension()
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer out.Close()

	if f == transcript.FormatXLSX {
		err = export.ToExcel(out, t)
	} else {
		err = transcript.Render(out, f, meta, t)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "transcript written to %s (%d turns)\n", outputPath, len(t))
	return nil
}

