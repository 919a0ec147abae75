package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/pcmon/internal/config"
	"github.com/rileyhilliard/pcmon/internal/conn"
	"github.com/rileyhilliard/pcmon/internal/dashboard"
	"github.com/rileyhilliard/pcmon/internal/errors"
	"github.com/rileyhilliard/pcmon/internal/frame"
	"github.com/rileyhilliard/pcmon/internal/series"
	"github.com/rileyhilliard/pcmon/internal/ui"
	"github.com/rileyhilliard/pcmon/internal/util"
)

// DefaultCheckWait bounds how long check waits for the first usable frame.
const DefaultCheckWait = 10 * time.Second

// probeResult is what one check run observed.
type probeResult struct {
	Frame   *frame.Frame
	Skipped int
}

// probe dials endpoint once and reads until a frame decodes or ctx ends.
// Undecodable messages are counted and skipped.
func probe(ctx context.Context, dialer conn.Dialer, endpoint string) (*probeResult, error) {
	t, err := dialer.Dial(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer t.Close()

	// ReadMessage has no context; closing the transport unblocks it.
	stop := context.AfterFunc(ctx, func() { _ = t.Close() })
	defer stop()

	res := &probeResult{}
	for {
		data, err := t.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.WrapWithCode(ctx.Err(), errors.ErrTransport,
					fmt.Sprintf("No usable frame from %s (%d skipped)", endpoint, res.Skipped),
					"The producer accepted the connection but sent nothing pcmon could read. Is it the right service?")
			}
			return nil, errors.WrapWithCode(err, errors.ErrTransport,
				"Stream closed before the first frame",
				"Check the producer's logs.")
		}
		f, err := frame.Decode(data)
		if err != nil {
			res.Skipped++
			continue
		}
		res.Frame = f
		return res, nil
	}
}

// checkCommand probes the stream and prints what the first frame carries.
// A nil dialer uses a websocket dialer built from the config.
func checkCommand(ctx context.Context, out io.Writer, dialer conn.Dialer, wait time.Duration) error {
	cfg, _, err := resolveConfig(configFlag, globalOverrides())
	if err != nil {
		return err
	}
	endpoint, err := conn.Endpoint(cfg.Origin)
	if err != nil {
		return err
	}
	if dialer == nil {
		dialer = conn.WebsocketDialer{HandshakeTimeout: cfg.HandshakeTimeout}
	}
	if wait <= 0 {
		wait = DefaultCheckWait
	}

	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	spinner := ui.NewSpinner("Reading " + endpoint)
	spinner.SetOutput(out)
	spinner.Start()
	res, err := probe(ctx, dialer, endpoint)
	if err != nil {
		spinner.Fail(errors.Summary(err))
		return err
	}
	spinner.Success()

	ps := panels(res.Frame, cfg)
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderTable(checkColumns, checkRows(ps)))
	fmt.Fprintln(out, ui.MutedStyle.Render("not reported: "+util.JoinOrNone(missingPanels(ps))))
	if res.Skipped > 0 {
		fmt.Fprintln(out, ui.WarningStyle.Render(util.CountNoun(res.Skipped, "undecodable message", "undecodable messages")+" skipped"))
	}
	return nil
}

var checkColumns = []ui.TableColumn{
	{Title: "Panel", Width: 10},
	{Title: "", Width: 2},
	{Title: "Reading", Width: 36},
}

// panel is one category of a frame. A category sent but marked unavailable
// is not present.
type panel struct {
	name    string
	sent    bool
	present bool
	reading string
}

// panels lists every category of f in dashboard order, with the headline
// reading formatted the way the dashboard formats it. GPU and system only
// count when the producer marks them available, as on the dashboard.
func panels(f *frame.Frame, cfg *config.Config) []panel {
	vm := dashboard.Reduce(dashboard.NewViewModel(series.DefaultCapacity), f, cfg.DashboardOptions())
	gpuOn := f.GPU != nil && f.GPU.Available.Or(false)
	systemOn := f.System != nil && f.System.Available.Or(false)
	return []panel{
		reported("cpu", f.CPU != nil, vm.CPU.Usage+" at "+vm.CPU.Frequency),
		{name: "gpu", sent: f.GPU != nil, present: gpuOn, reading: vm.GPU.Name + " " + vm.GPU.Usage},
		reported("memory", f.Memory != nil, vm.Memory.Used+" / "+vm.Memory.Total),
		reported("network", f.Network != nil, "down "+vm.Network.In+", up "+vm.Network.Out),
		reported("disk", f.Disk != nil, "read "+vm.Disk.In+", write "+vm.Disk.Out),
		reported("ping", f.Ping != nil, vm.Ping.Latency+" to "+vm.Ping.Host),
		reported("fans", f.Fans != nil, util.CountNoun(len(vm.Fans.Rows), "fan", "fans")),
		reported("processes", f.Processes != nil, util.CountNoun(len(vm.Processes), "process", "processes")+" shown"),
		{name: "system", sent: f.System != nil, present: systemOn, reading: vm.System.Hostname + " up " + vm.System.Uptime},
	}
}

func reported(name string, sent bool, reading string) panel {
	return panel{name: name, sent: sent, present: sent, reading: reading}
}

// checkRows renders panels as table rows.
func checkRows(ps []panel) [][]string {
	rows := make([][]string, len(ps))
	for i, p := range ps {
		switch {
		case p.present:
			rows[i] = []string{p.name, ui.SymbolSuccess, p.reading}
		case p.sent:
			rows[i] = []string{p.name, ui.SymbolSkipped, "unavailable"}
		default:
			rows[i] = []string{p.name, ui.SymbolPending, "not reported"}
		}
	}
	return rows
}

// missingPanels names the panels the frame did not send.
func missingPanels(ps []panel) []string {
	var missing []string
	for _, p := range ps {
		if !p.sent {
			missing = append(missing, p.name)
		}
	}
	return missing
}
