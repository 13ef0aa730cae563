package pyramid

import "fmt"

// action names accepted from clients
const (
	ActionRemove     = "remove"
	ActionRemoveTwo  = "removeTwo"
	ActionRemoveDraw = "removeDraw"
	ActionDiscard    = "discard"
)

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		return 0, false
	}

	return int(floatVal), true
}

// Action performs a client-requested move against the game.
// On success it returns the updated game state; on failure the game state is
// unchanged and the error names the violated precondition
func (g *Game) Action(message *PayloadIn) (*GameState, error) {
	if g == nil || !g.started {
		return nil, ErrNotStarted
	}

	data := message.AdditionalData

	switch message.Action {
	case ActionRemove:
		row, col, err := requireInts(data, "row", "col")
		if err != nil {
			return nil, err
		}

		if err := g.Remove(row, col); err != nil {
			return nil, err
		}
	case ActionRemoveTwo:
		row1, col1, err := requireInts(data, "row", "col")
		if err != nil {
			return nil, err
		}

		row2, col2, err := requireInts(data, "row2", "col2")
		if err != nil {
			return nil, err
		}

		if err := g.RemoveTwo(row1, col1, row2, col2); err != nil {
			return nil, err
		}
	case ActionRemoveDraw:
		drawIndex, ok := data.GetInt("drawIndex")
		if !ok {
			return nil, fmt.Errorf("missing int value: drawIndex")
		}

		row, col, err := requireInts(data, "row", "col")
		if err != nil {
			return nil, err
		}

		if err := g.RemoveUsingDraw(drawIndex, row, col); err != nil {
			return nil, err
		}
	case ActionDiscard:
		drawIndex, ok := data.GetInt("drawIndex")
		if !ok {
			return nil, fmt.Errorf("missing int value: drawIndex")
		}

		if err := g.DiscardDraw(drawIndex); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown action: %s", message.Action)
	}

	return g.State()
}

func requireInts(data AdditionalData, rowKey, colKey string) (int, int, error) {
	row, ok := data.GetInt(rowKey)
	if !ok {
		return 0, 0, fmt.Errorf("missing int value: %s", rowKey)
	}

	col, ok := data.GetInt(colKey)
	if !ok {
		return 0, 0, fmt.Errorf("missing int value: %s", colKey)
	}

	return row, col, nil
}
