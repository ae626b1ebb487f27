// Command carbonai runs gateway operations and manages stored inquiries from
// the command line.
//
// Usage:
//
//	carbonai search "Acme Manufacturing Ltd"
//	carbonai hubs "Leeds"
//	carbonai recommend data.json
//	carbonai analyze - < data.json
//	carbonai image -size 2K -aspect 16:9 -out farm.png "solar farm at dawn"
//	carbonai video -start farm.png "drone flyover of the solar farm"
//	carbonai speak -out brief.wav "Your emissions fell by twelve percent."
//	carbonai inquiries list
//
// The API key is read from API_KEY, then from a key baked in with
// -ldflags "-X main.buildAPIKey=...", then from VITE_API_KEY.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	ai "github.com/greengold/carbonai"
	"github.com/greengold/carbonai/audio"
	"github.com/greengold/carbonai/gateway"
	"github.com/greengold/carbonai/internal/config"
	"github.com/greengold/carbonai/inquiry"
)

var buildAPIKey string

const usage = `usage: carbonai <command> [flags] [args]

commands:
  search <query>          look up a company
  hubs <location>         find local sustainability hubs
  recommend <file|->      reduction recommendations for JSON data
  analyze <file|->        12-month decarbonization roadmap for JSON data
  image <prompt>          generate an image
  video <prompt>          generate a video and print its download URL
  speak <text>            synthesize speech to a WAV file
  inquiries <subcommand>  manage stored inquiries (list, submit, read, reply, delete)
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "carbonai: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.Config
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return errors.New("no command given")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a := &app{cfg: cfg, logger: cfg.Logger(), stdin: stdin, stdout: stdout}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "search", "hubs":
		return a.search(ctx, cmd, rest)
	case "recommend":
		return a.recommend(ctx, rest)
	case "analyze":
		return a.analyze(ctx, rest)
	case "image":
		return a.image(ctx, rest)
	case "video":
		return a.video(ctx, rest)
	case "speak":
		return a.speak(ctx, rest)
	case "inquiries":
		return a.inquiries(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) gateway() *gateway.Gateway {
	creds := ai.Credentials{Build: buildAPIKey, Logger: a.logger}
	return gateway.New(a.cfg.Gateway(creds, a.logger, nil))
}

func (a *app) search(ctx context.Context, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	input := strings.Join(fs.Args(), " ")

	g := a.gateway()
	var (
		res *ai.SearchResult
		err error
	)
	if cmd == "hubs" {
		res, err = g.FindNearbyHubs(ctx, input)
	} else {
		res, err = g.SearchEntity(ctx, input)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, res.Text)
	for _, src := range res.Sources {
		fmt.Fprintf(a.stdout, "  [%s] %s\n", src.Title, src.URI)
	}
	return nil
}

func (a *app) recommend(ctx context.Context, args []string) error {
	data, err := a.readData("recommend", args)
	if err != nil {
		return err
	}
	recs, err := a.gateway().GetRecommendations(ctx, data)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}

func (a *app) analyze(ctx context.Context, args []string) error {
	data, err := a.readData("analyze", args)
	if err != nil {
		return err
	}
	analysis, err := a.gateway().GetDeepAnalysis(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, analysis.Text)
	return nil
}

func (a *app) image(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("image", flag.ContinueOnError)
	size := fs.String("size", string(ai.ImageSize1K), "resolution tier: 1K, 2K or 4K")
	aspect := fs.String("aspect", ai.DefaultAspectRatio, "aspect ratio")
	out := fs.String("out", "image.png", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	img, err := a.gateway().GenerateImage(ctx, strings.Join(fs.Args(), " "),
		ai.WithImageSize(ai.ImageSize(*size)),
		ai.WithAspectRatio(*aspect),
	)
	if err != nil {
		return err
	}
	if img == nil {
		return errors.New("no image was generated")
	}
	if err := os.WriteFile(*out, img.Data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "wrote %s (%s, %d bytes)\n", *out, img.MIMEType, len(img.Data))
	return nil
}

func (a *app) video(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("video", flag.ContinueOnError)
	start := fs.String("start", "", "PNG file used as the first frame")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []ai.VideoOption
	if *start != "" {
		b, err := os.ReadFile(*start)
		if err != nil {
			return err
		}
		opts = append(opts, ai.WithStartImage(base64.StdEncoding.EncodeToString(b)))
	}

	url, err := a.gateway().GenerateVideo(ctx, strings.Join(fs.Args(), " "), opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, url)
	return nil
}

func (a *app) speak(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("speak", flag.ContinueOnError)
	out := fs.String("out", "speech.wav", "output WAV file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	clip, err := a.gateway().Speak(ctx, strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	if clip == nil {
		return errors.New("no audio was generated")
	}
	wav, err := audio.EncodeWAV(clip.Data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, wav, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "wrote %s\n", *out)
	return nil
}

// readData decodes a JSON object from the file named by the single
// argument, or from stdin when it is "-".
func (a *app) readData(cmd string, args []string) (map[string]any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s takes one argument: a JSON file or -", cmd)
	}

	var r io.Reader = a.stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var data map[string]any
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode %s data: %w", cmd, err)
	}
	return data, nil
}

func (a *app) store() *inquiry.Store {
	return inquiry.NewStore(inquiry.NewFileAdapter(a.cfg.InquiryFile))
}
