package worker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/Shopify/go-lua"

	"github.com/leaguekit/leaguesettings/internal/messages"
)

// FormulaVariables are the standings values a points formula may use.
var FormulaVariables = []string{"W", "L", "OTL", "T"}

// ValidatePointsFormula compiles formula as a Lua expression over
// FormulaVariables and evaluates it once. A blank formula is allowed.
func (w *Local) ValidatePointsFormula(ctx context.Context, formula string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := EvalPointsFormula(formula, map[string]float64{"W": 1, "L": 2, "OTL": 3, "T": 4})
	return err
}

// EvalPointsFormula evaluates formula with vars bound as globals. The Lua
// state opens no libraries, so only arithmetic over the variables works.
func EvalPointsFormula(formula string, vars map[string]float64) (float64, error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return 0, nil
	}
	if word := forbiddenWord(formula); word != "" {
		return 0, fmt.Errorf(messages.PointsFormulaForbiddenFmt, word)
	}

	l := lua.NewState()
	for _, name := range FormulaVariables {
		l.PushNumber(vars[name])
		l.SetGlobal(name)
	}
	if err := lua.LoadString(l, "return "+formula); err != nil {
		return 0, fmt.Errorf(messages.PointsFormulaSyntaxFmt, err)
	}
	if err := l.ProtectedCall(0, 1, 0); err != nil {
		return 0, fmt.Errorf(messages.PointsFormulaEvalFmt, err)
	}
	if l.TypeOf(-1) != lua.TypeNumber {
		return 0, errors.New(messages.PointsFormulaNotNumber)
	}
	v, _ := l.ToNumber(-1)
	l.Pop(1)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(messages.PointsFormulaNotNumber)
	}
	return v, nil
}

// forbiddenWord returns the first keyword that could loop or define code.
func forbiddenWord(formula string) string {
	words := strings.FieldsFunc(formula, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	for _, w := range words {
		switch w {
		case "function", "while", "repeat", "for", "goto":
			return w
		}
	}
	return ""
}
