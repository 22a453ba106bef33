package notion2bases

// Conversion kinds describe how a source-language function is expressed in
// the target language.
type conversionKind int

const (
	// kindGlobal keeps the call-with-parentheses form, optionally renamed.
	kindGlobal conversionKind = iota
	// kindProperty turns f(x) into (x).member with no trailing call.
	kindProperty
	// kindMethod turns f(x, y...) into (x).member(y...).
	kindMethod
	// kindOperator turns a binary function into an infix expression, or a
	// list accessor into indexing syntax.
	kindOperator
)

// conversion describes how one source function name maps into the target
// language. Arity is advisory only: a call site that does not carry enough
// arguments for the rewrite shape is left unrewritten in place.
type conversion struct {
	kind   conversionKind
	target string // renamed target member/function, empty means same name
	op     string // operator symbol for kindOperator
	arity  int
}

// propertyRef is the source-language property reference constructor. The
// convertibility checker skips it and the rewriter resolves it before the
// general rewrite loop runs.
const propertyRef = "ref"

// conversions is the static classification table from source function name
// to conversion descriptor. It is read-only configuration; nothing mutates
// it after init.
var conversions = map[string]conversion{
	// Control flow and numeric globals present in both languages.
	"if":    {kind: kindGlobal, arity: 3},
	"min":   {kind: kindGlobal, arity: 2},
	"max":   {kind: kindGlobal, arity: 2},
	"sum":   {kind: kindGlobal, arity: 1},
	"now":   {kind: kindGlobal},
	"today": {kind: kindGlobal},

	// Renamed globals.
	"toNumber":  {kind: kindGlobal, target: "number", arity: 1},
	"parseDate": {kind: kindGlobal, target: "date", arity: 1},

	// Binary arithmetic and comparison operators.
	"add":       {kind: kindOperator, op: "+", arity: 2},
	"subtract":  {kind: kindOperator, op: "-", arity: 2},
	"multiply":  {kind: kindOperator, op: "*", arity: 2},
	"divide":    {kind: kindOperator, op: "/", arity: 2},
	"mod":       {kind: kindOperator, op: "%", arity: 2},
	"equal":     {kind: kindOperator, op: "==", arity: 2},
	"unequal":   {kind: kindOperator, op: "!=", arity: 2},
	"larger":    {kind: kindOperator, op: ">", arity: 2},
	"largerEq":  {kind: kindOperator, op: ">=", arity: 2},
	"smaller":   {kind: kindOperator, op: "<", arity: 2},
	"smallerEq": {kind: kindOperator, op: "<=", arity: 2},
	"and":       {kind: kindOperator, op: "&&", arity: 2},
	"or":        {kind: kindOperator, op: "||", arity: 2},
	"not":       {kind: kindOperator, op: "!", arity: 1},

	// List accessors become indexing syntax.
	"first": {kind: kindOperator, op: "[0]", arity: 1},
	"last":  {kind: kindOperator, op: "[-1]", arity: 1},
	"at":    {kind: kindOperator, op: "[]", arity: 2},

	// Single-argument functions that become bare property accesses.
	"length": {kind: kindProperty, arity: 1},
	"year":   {kind: kindProperty, arity: 1},
	"month":  {kind: kindProperty, arity: 1},
	"hour":   {kind: kindProperty, arity: 1},
	"minute": {kind: kindProperty, arity: 1},
	// The source day-of-month function; the target spells it ".day". The
	// bare name collides with the target's date() constructor emitted for
	// parseDate, which is why parseDate is on the hazard list below.
	"date": {kind: kindProperty, target: "day", arity: 1},
	"day":  {kind: kindProperty, target: "weekday", arity: 1},

	// Functions that become method invocations on their first argument.
	"abs":        {kind: kindMethod, arity: 1},
	"round":      {kind: kindMethod, arity: 1},
	"ceil":       {kind: kindMethod, arity: 1},
	"floor":      {kind: kindMethod, arity: 1},
	"empty":      {kind: kindMethod, target: "isEmpty", arity: 1},
	"format":     {kind: kindMethod, target: "toString", arity: 1},
	"formatDate": {kind: kindMethod, target: "format", arity: 2},
	"contains":   {kind: kindMethod, arity: 2},
	"replace":    {kind: kindMethod, arity: 3},
	"replaceAll": {kind: kindMethod, arity: 3},
	"lower":      {kind: kindMethod, arity: 1},
	"upper":      {kind: kindMethod, arity: 1},
	"trim":       {kind: kindMethod, arity: 1},
	"split":      {kind: kindMethod, arity: 2},
	"join":       {kind: kindMethod, arity: 2},
	"slice":      {kind: kindMethod, arity: 2},
	"unique":     {kind: kindMethod, arity: 1},
	"flat":       {kind: kindMethod, arity: 1},
	"sort":       {kind: kindMethod, arity: 1},
	"reverse":    {kind: kindMethod, arity: 1},
	"map":        {kind: kindMethod, arity: 2},
	"filter":     {kind: kindMethod, arity: 2},

	// Special-cased in the rewriter: pattern test and date arithmetic.
	"test":         {kind: kindMethod, target: "matches", arity: 2},
	"dateAdd":      {kind: kindOperator, op: "+", arity: 3},
	"dateSubtract": {kind: kindOperator, op: "-", arity: 3},
}

// unsupported is the explicit deny list: source functions with no safe
// target equivalent. Any expression referencing one of these is rejected
// outright by the convertibility checker.
var unsupported = map[string]bool{
	// Math primitives the target language does not provide.
	"sqrt":  true,
	"cbrt":  true,
	"exp":   true,
	"ln":    true,
	"log2":  true,
	"log10": true,
	"pow":   true,
	"sign":  true,

	// Date arithmetic without a matching target primitive.
	"timestamp":     true,
	"fromTimestamp": true,
	"dateBetween":   true,
	"dateRange":     true,
	"dateStart":     true,
	"dateEnd":       true,
	"start":         true,
	"end":           true,
	"week":          true,

	// Statistical reducers.
	"mean":   true,
	"median": true,

	// Free variable binding and positional search.
	"let":       true,
	"lets":      true,
	"find":      true,
	"findIndex": true,
	"some":      true,
	"every":     true,

	// Misc source-only helpers.
	"id":        true,
	"style":     true,
	"unstyle":   true,
	"repeat":    true,
	"padStart":  true,
	"padEnd":    true,
	"substring": true,
	"concat":    true,
}

// hazardFunctions are rewritten ahead of the general loop via opaque
// placeholders: their renamed target form is spelled identically to a
// different source function, so leaving them inline would let a later pass
// misread the emitted call. parseDate emits date(...), which the loop would
// otherwise rewrite as the source day-of-month function.
var hazardFunctions = map[string]string{
	"parseDate": "date",
}

// durationUnits translates the source duration unit names used by
// dateAdd/dateSubtract into the target's compact duration codes.
var durationUnits = map[string]string{
	"years":   "y",
	"months":  "M",
	"weeks":   "w",
	"days":    "d",
	"hours":   "h",
	"minutes": "m",
	"seconds": "s",
}

// iterationVarSource and iterationVarTarget are the implicit element
// variables of the source and target map/filter forms.
const (
	iterationVarSource = "current"
	iterationVarTarget = "value"
)
