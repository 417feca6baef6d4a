package futures

import (
	"context"

	"github.com/abevier/expected/results"
)

// ResolveAll waits for all of the provided Futures to complete and returns a results.Result for each
// future at the index corresponding to the provided slice.
// If the provided context is canceled, the cancellation error will be returned as an error by this function.
// A result that cannot be copied out of its future is reported as a failure holding the copy error.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]results.Result[T, error], error) {
	res := make([]results.Result[T, error], 0, len(fs))

	for _, f := range fs {
		r, err := f.Result(ctx)
		// check for error at the end of the loop to avoid the race of cancelling while Getting the last value in the list
		if ctx.Err() != nil {
			r.Destroy()
			destroyAll(res)
			return nil, ctx.Err()
		}
		if err != nil {
			r = results.Failure[T](err)
		}
		res = append(res, r)
	}

	return res, nil
}

func destroyAll[T any](rs []results.Result[T, error]) {
	for i := range rs {
		rs[i].Destroy()
	}
}
