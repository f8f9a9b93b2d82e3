package header

//go:generate go tool errtrace -w .

import (
	"context"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/ascgrid/internal/errorutil"
)

// state is a grammar state of the header reader.
//
//	0 --ncols--> 1
//	1 --nrows--> 2
//	2 --xllcorner--> 3 | --xllcenter--> 4
//	3 --yllcorner--> 5
//	4 --yllcenter--> 5
//	5 --cellsize--> 7 | --dx--> 6
//	6 --dy--> 7
//	7 --NODATA_value--> 8
type state uint8

const (
	stateStart state = iota
	stateCols
	stateRows
	stateXCorner
	stateXCenter
	statePos
	stateDX
	stateCell
	stateNoData
)

type transition struct {
	from state
	kind Kind
	to   state
}

var transitions = [...]transition{
	{stateStart, NCols, stateCols},
	{stateCols, NRows, stateRows},
	{stateRows, XllCorner, stateXCorner},
	{stateRows, XllCenter, stateXCenter},
	{stateXCorner, YllCorner, statePos},
	{stateXCenter, YllCenter, statePos},
	{statePos, CellSize, stateCell},
	{statePos, DX, stateDX},
	{stateDX, DY, stateCell},
	{stateCell, NoData, stateNoData},
}

func newGrammar(initial state) *stateless.StateMachine {
	sm := stateless.NewStateMachine(initial)
	for _, t := range transitions {
		sm.Configure(t.from).Permit(t.kind, t.to)
	}
	sm.OnUnhandledTrigger(func(_ context.Context, _ stateless.State, trigger stateless.Trigger, _ []string) error {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrHeaderSyntax, "unexpected token %s", trigger))
	})
	return sm
}

// next returns the state reached from st by a token of the given kind.
func (st state) next(kind Kind) (state, error) {
	sm := newGrammar(st)
	if err := sm.Fire(kind); err != nil {
		return st, errtrace.Wrap(err)
	}
	return sm.MustState().(state), nil //nolint:forcetypeassert
}

func (st state) complete() bool { return st >= stateCell }

func (st state) terminal() bool { return st == stateNoData }
