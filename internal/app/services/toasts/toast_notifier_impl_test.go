package toasts

import (
	"testing"
	"time"

	"clinidash-core/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestToastNotifierShow(t *testing.T) {
	t.Run("Latest Toast Wins", func(t *testing.T) {
		notifier := NewToastNotifier(zap.NewNop())

		notifier.Show("first", constvars.ToastInfo, time.Minute)
		notifier.Show("second", constvars.ToastSuccess, time.Minute)

		current := notifier.Current()
		assert.NotNil(t, current)
		assert.Equal(t, "second", current.Text, "only one toast is ever visible")
		assert.Equal(t, constvars.ToastSuccess, current.Kind)
	})

	t.Run("Toast Expires After Its Duration", func(t *testing.T) {
		notifier := NewToastNotifier(zap.NewNop())

		notifier.Show("transient", constvars.ToastInfo, 50*time.Millisecond)
		assert.NotNil(t, notifier.Current())

		assert.Eventually(t, func() bool {
			return notifier.Current() == nil
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Replacement Outlives The Replaced Timer", func(t *testing.T) {
		notifier := NewToastNotifier(zap.NewNop())

		notifier.Show("short", constvars.ToastError, 50*time.Millisecond)
		notifier.Show("long", constvars.ToastSuccess, time.Minute)

		time.Sleep(150 * time.Millisecond)

		current := notifier.Current()
		assert.NotNil(t, current, "the old timer must not expire the new toast")
		assert.Equal(t, "long", current.Text)
	})

	t.Run("Sticky Toast Stays Until Dismissed", func(t *testing.T) {
		notifier := NewToastNotifier(zap.NewNop())

		notifier.Show("sticky", constvars.ToastWarning, 0)
		time.Sleep(100 * time.Millisecond)

		assert.NotNil(t, notifier.Current(), "non-positive duration means sticky")

		notifier.Dismiss()
		assert.Nil(t, notifier.Current())
	})
}

func TestToastNotifierDismiss(t *testing.T) {
	t.Run("Dismiss Clears The Slot", func(t *testing.T) {
		notifier := NewToastNotifier(zap.NewNop())

		notifier.Show("visible", constvars.ToastInfo, time.Minute)
		notifier.Dismiss()

		assert.Nil(t, notifier.Current())
	})

	t.Run("Dismiss Without A Toast Is A No-Op", func(t *testing.T) {
		notifier := NewToastNotifier(zap.NewNop())

		notifier.Dismiss()

		assert.Nil(t, notifier.Current())
	})
}
