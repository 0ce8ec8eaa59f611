package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/guitarnotes/chord"
	"github.com/jsphweid/guitarnotes/harmony"
	midifile "github.com/jsphweid/guitarnotes/midi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	inPort int
	settle time.Duration
)

func init() {
	listenCmd.Flags().IntVar(&inPort, "port", 0, "midi input port number")
	listenCmd.Flags().DurationVar(&settle, "settle", 80*time.Millisecond, "wait this long after the last key change before naming")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords held on a midi keyboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return listen(ctx, inPort, settle)
	},
}

func describeHeld(keys []uint8) string {
	if len(keys) == 0 {
		return ""
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = midifile.KeyName(k)
	}

	notes := harmony.ToNotes(keys)
	chords, err := chord.FindChord(notes)
	if err != nil {
		return strings.Join(names, " ")
	}
	if first := chord.First(chords); first != nil {
		return fmt.Sprintf("%v  %v", heading(first.String()), dimStyle.Render(strings.Join(names, " ")))
	}
	return dimStyle.Render(strings.Join(names, " "))
}

func listen(ctx context.Context, port int, wait time.Duration) error {
	defer midi.CloseDriver()
	in, err := midi.InPort(port)
	if err != nil {
		return errors.Wrapf(err, "can't find midi input %v", port)
	}

	held := harmony.NewHeld()
	debounced := debounce.New(wait)
	report := func() {
		if line := describeHeld(held.Keys()); line != "" {
			fmt.Println(line)
		}
	}

	stopListening, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.Press(key)
		case msg.GetNoteEnd(&ch, &key):
			held.Release(key)
		default:
			return
		}
		logrus.WithFields(logrus.Fields{"key": key, "held": held.Keys()}).Debug("key change")
		debounced(report)
	})
	if err != nil {
		return errors.Wrap(err, "could not listen")
	}

	logrus.WithField("port", in.String()).Info("Listening, ctrl-c to stop")
	<-ctx.Done()
	stopListening()
	return nil
}
