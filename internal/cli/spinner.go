package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/blockview/pkg/errors"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// renderSpinner animates a status line while a sample renders. The animation
// ends when the sample finishes or the command context is cancelled.
type renderSpinner struct {
	w       io.Writer
	label   string
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
}

// startSpinner starts animating "Rendering <sample>..." on w.
func startSpinner(ctx context.Context, w io.Writer, sample string) *renderSpinner {
	ctx, cancel := context.WithCancel(ctx)
	s := &renderSpinner{
		w:       w,
		label:   "Rendering " + sample + "...",
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

func (s *renderSpinner) run(ctx context.Context) {
	defer close(s.stopped)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.label)+4))
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.label))
		}
	}
}

// stop ends the animation and clears the line. A non-nil err is reported
// with its user message. Only the first call has an effect.
func (s *renderSpinner) stop(err error) {
	s.once.Do(func() {
		s.cancel()
		<-s.stopped
		if err != nil {
			printError("%s", errors.UserMessage(err))
		}
	})
}
