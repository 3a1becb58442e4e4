package unlayercli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"cdr.dev/slog"
	"github.com/fsnotify/fsnotify"

	"oss.terrastruct.com/unlayerkit/lib/bytesize"
	"oss.terrastruct.com/unlayerkit/lib/debounce"
	"oss.terrastruct.com/unlayerkit/lib/log"
	"oss.terrastruct.com/unlayerkit/lib/xbrowser"
	"oss.terrastruct.com/unlayerkit/lib/xmain"
	"oss.terrastruct.com/unlayerkit/unlayer"
)

func watchCmd(ctx context.Context, ms *xmain.State, fl flags, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return xmain.UsageErrorf("watch must be passed an export data file and optionally an output file")
	}
	inputPath := ms.AbsPath(args[0])
	if inputPath == "-" {
		return xmain.UsageErrorf("watch cannot read from stdin")
	}
	outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".html"
	if len(args) == 2 {
		outputPath = ms.AbsPath(args[1])
	}
	if outputPath == "-" || outputPath == inputPath {
		return xmain.UsageErrorf("watch must write to a file other than its input")
	}

	w, err := newWatcher(ctx, ms, fl, inputPath, outputPath)
	if err != nil {
		return err
	}
	return w.run()
}

type watcher struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	ms         *xmain.State
	fl         flags
	inputPath  string
	outputPath string

	buildCh       chan struct{}
	settled       func()
	cancelSettled func()
	fw            *fsnotify.Watcher
	openedBrowser bool

	errMu sync.Mutex
	err   error

	stateMu sync.Mutex
	state   unlayer.LoadingState
}

func newWatcher(ctx context.Context, ms *xmain.State, fl flags, inputPath, outputPath string) (*watcher, error) {
	ctx, cancel := context.WithCancel(ctx)

	w := &watcher{
		ctx:    ctx,
		cancel: cancel,

		ms:         ms,
		fl:         fl,
		inputPath:  inputPath,
		outputPath: outputPath,

		buildCh: make(chan struct{}, 1),
	}
	// Editors emit bursts of events for one logical save, the build waits for them
	// to settle.
	w.settled, w.cancelSettled = debounce.NewFunc(w.requestBuild, fl.wait)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		cancel()
		return nil, err
	}
	w.fw = fw
	return w, nil
}

func (w *watcher) run() error {
	w.goFunc(w.watchLoop)
	w.goFunc(w.buildLoop)

	w.wg.Wait()
	w.close()
	return w.err
}

func (w *watcher) close() {
	w.cancel()
	w.cancelSettled()
	err := w.fw.Close()
	w.setErr(err)
}

func (w *watcher) setErr(err error) {
	w.errMu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.errMu.Unlock()
}

func (w *watcher) goFunc(fn func(context.Context) error) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.cancel()

		err := fn(w.ctx)
		w.setErr(err)
	}()
}

func (w *watcher) setState(s unlayer.LoadingState) {
	w.stateMu.Lock()
	prev := w.state
	w.state = s
	w.stateMu.Unlock()
	log.Debug(w.ctx, "state", slog.F("from", prev), slog.F("to", s))
}

func (w *watcher) watchLoop(ctx context.Context) error {
	lastModified, err := w.ensureAddWatch(ctx)
	if err != nil {
		return err
	}
	w.ms.Log.Info.Printf("building %v...", w.inputPath)
	w.requestBuild()

	pollTicker := time.NewTicker(time.Second * 10)
	defer pollTicker.Stop()

	for {
		select {
		case <-pollTicker.C:
			// Catches changes whose events were lost, e.g. after the file was replaced.
			mt, err := w.ensureAddWatch(ctx)
			if err != nil {
				return err
			}
			if !mt.Equal(lastModified) {
				lastModified = mt
				w.requestBuild()
			}
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Debug.Printf("received file system event %v", ev)
			mt, err := w.ensureAddWatch(ctx)
			if err != nil {
				return err
			}
			if ev.Op == fsnotify.Chmod && mt.Equal(lastModified) {
				continue
			}
			lastModified = mt
			w.settled()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Error.Printf("fsnotify error: %v", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *watcher) requestBuild() {
	select {
	case w.buildCh <- struct{}{}:
	default:
	}
}

func (w *watcher) ensureAddWatch(ctx context.Context) (time.Time, error) {
	interval := time.Second
	tc := time.NewTimer(0)
	<-tc.C
	for {
		mt, err := w.addWatch()
		if err == nil {
			return mt, nil
		}
		w.ms.Log.Error.Printf("failed to watch inputPath %q: %v (retrying in %v)", w.inputPath, err, interval)

		tc.Reset(interval)
		select {
		case <-tc.C:
			if interval < time.Second*16 {
				interval *= 2
			}
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		}
	}
}

func (w *watcher) addWatch() (time.Time, error) {
	err := w.fw.Add(w.inputPath)
	if err != nil {
		return time.Time{}, err
	}
	d, err := os.Stat(w.inputPath)
	if err != nil {
		return time.Time{}, err
	}
	return d.ModTime(), nil
}

func (w *watcher) buildLoop(ctx context.Context) error {
	firstBuild := true
	for {
		select {
		case <-w.buildCh:
		case <-ctx.Done():
			return ctx.Err()
		}

		rebuiltPrefix := ""
		if !firstBuild {
			rebuiltPrefix = "re"
		}
		firstBuild = false

		w.setState(unlayer.Loading)
		start := time.Now()
		n, err := w.build()
		if err != nil {
			w.setState(unlayer.Failed)
			w.ms.Log.Error.Print(fmt.Errorf("failed to %sbuild: %w", rebuiltPrefix, err))
			continue
		}
		w.setState(unlayer.Loaded)
		log.Info(ctx, "built",
			slog.F("output", w.outputPath),
			slog.F("size", bytesize.Format(float64(n))),
			slog.F("took", time.Since(start)),
		)
		w.ms.Log.Success.Printf("successfully %sbuilt %v to %v", rebuiltPrefix, w.inputPath, w.outputPath)

		if !w.openedBrowser {
			w.openedBrowser = true
			err = xbrowser.Open(ctx, w.fl.browser, w.outputPath)
			if err != nil {
				w.ms.Log.Warn.Printf("failed to open browser to %v: %v", w.outputPath, err)
			}
		}
	}
}

// build writes the sanitized HTML of the input and returns its length.
func (w *watcher) build() (int, error) {
	input, err := os.ReadFile(w.inputPath)
	if err != nil {
		return 0, err
	}
	ed, err := unlayer.ParseExportData(input)
	if err != nil {
		return 0, err
	}
	html := ed.Sanitized().HTML
	return len(html), w.ms.WritePath(w.outputPath, []byte(html))
}
