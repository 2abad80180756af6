package input

// Action names a control request from the embedding UI.
type Action int

const (
	ACT_INTERRUPT Action = iota // ctrl-c
	ACT_EOF                     // ctrl-d
	ACT_SUSPEND                 // ctrl-z
	ACT_CLEAR                   // ctrl-l
	ACT_KILL_LINE               // ctrl-u
	ACT_LINE_START              // ctrl-a
	ACT_LINE_END                // ctrl-e
	ACT_KILL_TO_END             // ctrl-k
	ACT_TAB
	ACT_ENTER
	ACT_ESCAPE
	ACT_BACKSPACE
	ACT_DELETE
	ACT_HOME
	ACT_END
	ACT_PGUP
	ACT_PGDN
	ACT_UP
	ACT_DOWN
	ACT_RIGHT
	ACT_LEFT
	ACT_FUNCTION
	ACT_RAW
)

// Control is one encodable input: a named action, a function key, or
// raw bytes passed through untouched.
type Control struct {
	act Action
	fn  int
	raw []byte
}

func NewControl(act Action) Control {
	return Control{act: act}
}

func FunctionKey(n int) Control {
	return Control{act: ACT_FUNCTION, fn: n}
}

func RawSequence(p []byte) Control {
	return Control{act: ACT_RAW, raw: p}
}

// Seq is an encoded byte sequence. Most encodings alias shared static
// storage; Owned reports when the bytes belong to this Seq alone and
// may be modified.
type Seq struct {
	b     []byte
	owned bool
}

func (s Seq) Bytes() []byte {
	return s.b
}

func (s Seq) Owned() bool {
	return s.owned
}

// The encodings that don't depend on terminal state.
var fixedSeqs = map[Action]Seq{
	ACT_INTERRUPT:   {b: []byte{0x03}},
	ACT_EOF:         {b: []byte{0x04}},
	ACT_SUSPEND:     {b: []byte{0x1a}},
	ACT_CLEAR:       {b: []byte{0x0c}},
	ACT_KILL_LINE:   {b: []byte{0x15}},
	ACT_LINE_START:  {b: []byte{0x01}},
	ACT_LINE_END:    {b: []byte{0x05}},
	ACT_KILL_TO_END: {b: []byte{0x0b}},
	ACT_TAB:         {b: []byte{0x09}},
	ACT_ENTER:       {b: []byte{0x0d}},
	ACT_ESCAPE:      {b: []byte{0x1b}},
	ACT_BACKSPACE:   {b: []byte{0x7f}},
	ACT_DELETE:      {b: []byte("\x1b[3~")},
	ACT_HOME:        {b: []byte("\x1b[H")},
	ACT_END:         {b: []byte("\x1b[F")},
	ACT_PGUP:        {b: []byte("\x1b[5~")},
	ACT_PGDN:        {b: []byte("\x1b[6~")},
}

// Arrows honor the cursor key mode: CSI finals normally, SS3 finals
// in application mode.
var arrowsNormal = map[Action]Seq{
	ACT_UP:    {b: []byte("\x1b[A")},
	ACT_DOWN:  {b: []byte("\x1b[B")},
	ACT_RIGHT: {b: []byte("\x1b[C")},
	ACT_LEFT:  {b: []byte("\x1b[D")},
}

var arrowsApplication = map[Action]Seq{
	ACT_UP:    {b: []byte("\x1bOA")},
	ACT_DOWN:  {b: []byte("\x1bOB")},
	ACT_RIGHT: {b: []byte("\x1bOC")},
	ACT_LEFT:  {b: []byte("\x1bOD")},
}

// F1-F4 are SS3 letters; F5-F12 are tilde sequences with the vt220
// codes, gaps included.
var fnSeqs = map[int]Seq{
	1:  {b: []byte("\x1bOP")},
	2:  {b: []byte("\x1bOQ")},
	3:  {b: []byte("\x1bOR")},
	4:  {b: []byte("\x1bOS")},
	5:  {b: []byte("\x1b[15~")},
	6:  {b: []byte("\x1b[17~")},
	7:  {b: []byte("\x1b[18~")},
	8:  {b: []byte("\x1b[19~")},
	9:  {b: []byte("\x1b[20~")},
	10: {b: []byte("\x1b[21~")},
	11: {b: []byte("\x1b[23~")},
	12: {b: []byte("\x1b[24~")},
}

// Bytes encodes the control for a terminal in the given cursor key
// mode. The bytes alias shared storage for everything except raw
// passthrough, so treat them as read-only unless Owned says
// otherwise.
func (c Control) Bytes(mode KeyMode) Seq {
	switch c.act {
	case ACT_RAW:
		return Seq{b: c.raw, owned: true}
	case ACT_UP, ACT_DOWN, ACT_RIGHT, ACT_LEFT:
		if mode == MODE_APPLICATION {
			return arrowsApplication[c.act]
		}
		return arrowsNormal[c.act]
	case ACT_FUNCTION:
		if s, ok := fnSeqs[c.fn]; ok {
			return s
		}
		// Function keys off the map degrade to a bare escape.
		return fixedSeqs[ACT_ESCAPE]
	}

	return fixedSeqs[c.act]
}
