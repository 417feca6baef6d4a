package results

import (
	"testing"

	pt "github.com/abevier/expected/internal/payloadtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errHook = errors.New("hook failed")

func TestInfallibleSourceDestroysFirst(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	obs := pt.NewMockObserver(ctrl)

	r := Failure[int](pt.Probe{ID: 1, Obs: obs})

	obs.EXPECT().Destroyed(1)
	req.NoError(r.AssignValue(5))
	req.Equal(5, r.Value())
}

func TestBuildsAsideWhenMoveCannotFail(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		obs := pt.NewMockObserver(ctrl)

		r := Failure[pt.CopyProbe](pt.CopyProbe{ID: 1, Obs: obs})
		src := Success[pt.CopyProbe, pt.CopyProbe](pt.CopyProbe{ID: 2, Obs: obs})

		gomock.InOrder(
			obs.EXPECT().Copied(2),
			obs.EXPECT().Destroyed(1),
		)
		req.NoError(r.CopyFrom(&src))
		req.Equal(2, r.Value().ID)
	})

	t.Run("copy fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		obs := pt.NewMockObserver(ctrl)

		r := Failure[pt.CopyProbe](pt.CopyProbe{ID: 1, Obs: obs})
		src := Success[pt.CopyProbe, pt.CopyProbe](pt.CopyProbe{ID: 2, Obs: obs})

		obs.EXPECT().Copied(2).Return(errHook)
		req.ErrorIs(r.CopyFrom(&src), errHook)
		req.Equal(1, r.Err().ID)
	})
}

func TestSetsAsideWhenMoveCanFail(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		obs := pt.NewMockObserver(ctrl)

		r := Failure[pt.Probe](pt.Probe{ID: 1, Obs: obs})
		src := Success[pt.Probe, pt.Probe](pt.Probe{ID: 2, Obs: obs})

		gomock.InOrder(
			obs.EXPECT().Copied(1),
			obs.EXPECT().Destroyed(1),
			obs.EXPECT().Copied(2),
			obs.EXPECT().Destroyed(1),
		)
		req.NoError(r.CopyFrom(&src))
		req.Equal(2, r.Value().ID)
	})

	t.Run("copy fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		obs := pt.NewMockObserver(ctrl)

		r := Failure[pt.Probe](pt.Probe{ID: 1, Obs: obs})
		src := Success[pt.Probe, pt.Probe](pt.Probe{ID: 2, Obs: obs})

		gomock.InOrder(
			obs.EXPECT().Copied(1),
			obs.EXPECT().Destroyed(1),
			obs.EXPECT().Copied(2).Return(errHook),
			obs.EXPECT().Moved(1),
		)
		req.ErrorIs(r.CopyFrom(&src), errHook)
		req.True(r.IsFailure())
		req.Equal(1, r.Err().ID)
	})

	t.Run("set aside fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		obs := pt.NewMockObserver(ctrl)

		r := Failure[pt.Probe](pt.Probe{ID: 1, Obs: obs})
		src := Success[pt.Probe, pt.Probe](pt.Probe{ID: 2, Obs: obs})

		obs.EXPECT().Copied(1).Return(errHook)
		req.ErrorIs(r.CopyFrom(&src), errHook)
		req.Equal(1, r.Err().ID)
	})
}

func TestSwapBuffersInfalliblePayload(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	obs := pt.NewMockObserver(ctrl)

	a := Success[int, pt.Probe](7)
	b := Failure[int](pt.Probe{ID: 2, Obs: obs})

	obs.EXPECT().Moved(2)
	req.NoError(a.SwapWith(&b))
	req.Equal(2, a.Err().ID)
	req.Equal(7, b.Value())
}
