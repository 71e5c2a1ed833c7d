package notify_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arcflux/arcflux/pkg/utils/notify"
	"github.com/arcflux/arcflux/pkg/utils/timer"
)

func TestWriteMessage_Symbols(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		msgType notify.MessageType
		want    string
	}{
		{name: "error", msgType: notify.ErrorType, want: "✗ boom\n"},
		{name: "warning", msgType: notify.WarningType, want: "⚠ boom\n"},
		{name: "activity", msgType: notify.ActivityType, want: "► boom\n"},
		{name: "success", msgType: notify.SuccessType, want: "✔ boom\n"},
		{name: "info", msgType: notify.InfoType, want: "ℹ boom\n"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			notify.WriteMessage(notify.Message{
				Type:    testCase.msgType,
				Content: "boom",
				Writer:  &out,
			})

			if got := out.String(); got != testCase.want {
				t.Fatalf("output mismatch. want %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestWriteMessage_Formatting(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Errorf(&out, "failed after %d attempts", 3)

	want := "✗ failed after 3 attempts\n"
	if got := out.String(); got != want {
		t.Fatalf("output mismatch. want %q, got %q", want, got)
	}
}

func TestWriteMessage_SuccessWithTimerEmitsTimingBlock(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.SuccessWithTimerf(&out, timer.New(), "done")

	got := out.String()

	if !strings.HasPrefix(got, "✔ done\n") {
		t.Fatalf("missing success line in %q", got)
	}

	if !strings.Contains(got, "current:") || !strings.Contains(got, "total:") {
		t.Fatalf("missing timing block in %q", got)
	}
}

func TestWriteMessage_TimerIgnoredForNonSuccess(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.WriteMessage(notify.Message{
		Type:    notify.WarningType,
		Content: "careful",
		Timer:   timer.New(),
		Writer:  &out,
	})

	want := "⚠ careful\n"
	if got := out.String(); got != want {
		t.Fatalf("output mismatch. want %q, got %q", want, got)
	}
}
