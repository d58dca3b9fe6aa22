package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucodelang/ucls/internal/parse"
)

// testRegistry mirrors the shape of the standard registry: a few global
// builtins, the fs module and its tagged handle types. 'open' is reachable
// through the fs module only, 'signal' is a global builtin.
func testRegistry() *TableRegistry {
	registry := NewTableRegistry()

	registry.AddBuiltin(Signature{Name: "print", MaxArgs: -1, Return: NewType(IntegerType)})
	registry.AddBuiltin(Signature{Name: "length", MinArgs: 1, MaxArgs: 1, Params: []ValueType{AnyType}, Return: NewType(IntegerType, NullType)})
	registry.AddBuiltin(Signature{Name: "push", MinArgs: 2, MaxArgs: -1, Params: []ValueType{ArrayType}, Return: NewType(UnknownType)})
	registry.AddBuiltin(Signature{Name: "uc", MinArgs: 1, MaxArgs: 1, Params: []ValueType{StringType}, Return: NewType(StringType, NullType)})
	registry.AddBuiltin(Signature{Name: "sqrt", MinArgs: 1, MaxArgs: 1, Params: []ValueType{NumericType}, Return: NewType(DoubleType)})
	registry.AddBuiltin(Signature{Name: "signal", MinArgs: 1, MaxArgs: 2, Params: []ValueType{IntegerType}, Return: NewType(IntegerType, BooleanType)})

	registry.AddModule(Module{
		Name: "fs",
		Functions: map[string]Signature{
			"open":    {Name: "open", MinArgs: 1, MaxArgs: 3, Params: []ValueType{StringType, StringType}, Return: NewType(ValueType("fs.file"))},
			"opendir": {Name: "opendir", MinArgs: 1, MaxArgs: 1, Params: []ValueType{StringType}, Return: NewType(ValueType("fs.dir"))},
			"error":   {Name: "error", MaxArgs: 0, Return: NewType(StringType, NullType)},
		},
	})
	registry.AddTaggedType("fs.file", map[string]Signature{
		"read":  {Name: "read", MinArgs: 1, MaxArgs: 1, Return: NewType(StringType, NullType)},
		"write": {Name: "write", MinArgs: 1, MaxArgs: 1, Params: []ValueType{AnyType}, Return: NewType(IntegerType, NullType)},
		"seek":  {Name: "seek", MaxArgs: 2, Return: NewType(BooleanType)},
		"close": {Name: "close", MaxArgs: 0, Return: NewType(BooleanType)},
	})
	registry.AddTaggedType("fs.dir", map[string]Signature{
		"read":  {Name: "read", MaxArgs: 0, Return: NewType(StringType, NullType)},
		"tell":  {Name: "tell", MaxArgs: 0, Return: NewType(IntegerType, NullType)},
		"close": {Name: "close", MaxArgs: 0, Return: NewType(BooleanType)},
	})
	return registry
}

func analyzeForTest(t *testing.T, code string) *Result {
	t.Helper()
	result := AnalyzeString("test", code, Options{Registry: testRegistry()})
	require.NotNil(t, result)
	return result
}

func globalSymbol(t *testing.T, result *Result, name string) *Symbol {
	t.Helper()
	sym, ok := result.Table.Global.LookupLocal(name)
	require.True(t, ok, "no global binding named %q", name)
	return sym
}

func errorCount(result *Result) int {
	count := 0
	for _, diag := range result.Diagnostics {
		if diag.Severity == ErrorSeverity {
			count++
		}
	}
	return count
}

func warningCount(result *Result) int {
	return len(result.Diagnostics) - errorCount(result)
}

func TestAnalyzeResolution(t *testing.T) {

	t.Run("undefined variable", func(t *testing.T) {
		result := analyzeForTest(t, "x;")

		require.Len(t, result.Diagnostics, 1)
		diag := result.Diagnostics[0]
		assert.Equal(t, ErrorSeverity, diag.Severity)
		assert.Equal(t, UndefinedVariableCode, diag.Code)
		assert.Equal(t, "undefined variable 'x'", diag.Message)
		assert.Equal(t, parse.NodeSpan{Start: 0, End: 1}, diag.Span)
	})

	t.Run("undefined callee reports a single undefined function diagnostic", func(t *testing.T) {
		result := analyzeForTest(t, "let e = open();")

		require.Len(t, result.Diagnostics, 1)
		diag := result.Diagnostics[0]
		assert.Equal(t, ErrorSeverity, diag.Severity)
		assert.Equal(t, UndefinedFunctionCode, diag.Code)
		assert.Equal(t, "undefined function 'open'", diag.Message)
		assert.Equal(t, parse.NodeSpan{Start: 8, End: 12}, diag.Span)
	})

	t.Run("each unresolved occurrence reports once", func(t *testing.T) {
		result := analyzeForTest(t, "foo(bar);")

		require.Len(t, result.Diagnostics, 2)
		assert.Equal(t, UndefinedFunctionCode, result.Diagnostics[0].Code)
		assert.Equal(t, "undefined function 'foo'", result.Diagnostics[0].Message)
		assert.Equal(t, UndefinedVariableCode, result.Diagnostics[1].Code)
		assert.Equal(t, "undefined variable 'bar'", result.Diagnostics[1].Message)
	})

	t.Run("builtins resolve", func(t *testing.T) {
		result := analyzeForTest(t, "print(1, 2, 3);")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("builtins are values too", func(t *testing.T) {
		result := analyzeForTest(t, "let fn = print;")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("comma sequence in statement position resolves", func(t *testing.T) {
		result := analyzeForTest(t, "let a = 0;\nlet b = 0;\na = 1, b = 2;\nprint(a + b);")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("use before declaration resolves silently", func(t *testing.T) {
		result := analyzeForTest(t, "function f() {\n\treturn helper();\n}\nfunction helper() {\n\treturn 1;\n}\nf();")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("redeclaration in the same scope", func(t *testing.T) {
		result := analyzeForTest(t, "let x = 1;\nlet x = 2;")

		require.Len(t, result.Diagnostics, 1)
		diag := result.Diagnostics[0]
		assert.Equal(t, ErrorSeverity, diag.Severity)
		assert.Equal(t, RedeclarationCode, diag.Code)
		assert.Equal(t, "'x' is already declared in this scope", diag.Message)
		assert.Equal(t, parse.NodeSpan{Start: 15, End: 16}, diag.Span)

		//references keep resolving to the first binding
		sym := globalSymbol(t, result, "x")
		assert.Equal(t, parse.NodeSpan{Start: 4, End: 5}, sym.DeclSpan)
	})

	t.Run("declaring in an inner scope is not a redeclaration", func(t *testing.T) {
		result := analyzeForTest(t, "let count = 1;\nfunction tick() {\n\tlet count = 2;\n\treturn count;\n}\ntick();")

		require.Len(t, result.Diagnostics, 1)
		diag := result.Diagnostics[0]
		assert.Equal(t, WarningSeverity, diag.Severity)
		assert.Equal(t, ShadowingCode, diag.Code)
		assert.Equal(t, "declaration of 'count' shadows a binding in an enclosing scope", diag.Message)
	})

	t.Run("shadowing a builtin is a warning, never an error", func(t *testing.T) {
		result := analyzeForTest(t, "let signal = 1;")

		require.Len(t, result.Diagnostics, 1)
		diag := result.Diagnostics[0]
		assert.Equal(t, WarningSeverity, diag.Severity)
		assert.Equal(t, BuiltinShadowingCode, diag.Code)
		assert.Equal(t, "declaration of 'signal' shadows the builtin of the same name", diag.Message)
		assert.Equal(t, 0, errorCount(result))
	})

	t.Run("redeclaring a builtin-shadowing name reports redeclaration only once", func(t *testing.T) {
		result := analyzeForTest(t, "let signal = 1;\nlet signal = 2;")

		require.Len(t, result.Diagnostics, 2)
		assert.Equal(t, BuiltinShadowingCode, result.Diagnostics[0].Code)
		assert.Equal(t, RedeclarationCode, result.Diagnostics[1].Code)
		assert.Equal(t, 1, errorCount(result))
		assert.Equal(t, 1, warningCount(result))
	})

	t.Run("unused local variable", func(t *testing.T) {
		result := analyzeForTest(t, "function build() {\n\tlet temp = 1;\n\treturn 2;\n}\nbuild();")

		require.Len(t, result.Diagnostics, 1)
		diag := result.Diagnostics[0]
		assert.Equal(t, WarningSeverity, diag.Severity)
		assert.Equal(t, UnusedVariableCode, diag.Code)
		assert.Equal(t, "'temp' is declared but never used", diag.Message)
	})

	t.Run("unused nested function", func(t *testing.T) {
		result := analyzeForTest(t, "function outer() {\n\tfunction inner() {\n\t\treturn 1;\n\t}\n\treturn 2;\n}\nouter();")

		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, UnusedVariableCode, result.Diagnostics[0].Code)
		assert.Equal(t, "'inner' is declared but never used", result.Diagnostics[0].Message)
	})

	t.Run("globals are never reported unused", func(t *testing.T) {
		result := analyzeForTest(t, "let idle = 1;")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("parameters are never reported unused", func(t *testing.T) {
		result := analyzeForTest(t, "function apply(callback) {\n\treturn 1;\n}\napply(print);")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("catch binding is never reported unused", func(t *testing.T) {
		result := analyzeForTest(t, "try {\n\tprint(1);\n} catch (err) {\n}")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("exported declarations", func(t *testing.T) {
		result := analyzeForTest(t, "export function helper() {\n\treturn 1;\n}")

		assert.Empty(t, result.Diagnostics)
		assert.True(t, globalSymbol(t, result, "helper").Exported)
	})

	t.Run("export list marks and uses its bindings", func(t *testing.T) {
		result := analyzeForTest(t, "let rate = 2;\nexport { rate };")

		assert.Empty(t, result.Diagnostics)
		sym := globalSymbol(t, result, "rate")
		assert.True(t, sym.Exported)
		assert.NotZero(t, sym.UsedCount)
	})

	t.Run("exporting an undefined name", func(t *testing.T) {
		result := analyzeForTest(t, "export { missing };")

		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, UndefinedVariableCode, result.Diagnostics[0].Code)
	})

	t.Run("loop variables", func(t *testing.T) {

		t.Run("without declaration keyword bind implicitly", func(t *testing.T) {
			result := analyzeForTest(t, "let data = { a: 1 };\nfor (k, v in data) {\n\tprint(k, v);\n}")

			assert.Empty(t, result.Diagnostics)
		})

		t.Run("reuse an existing binding", func(t *testing.T) {
			result := analyzeForTest(t, "let k = 1;\nfor (k in {}) {\n\tprint(k);\n}\nprint(k);")

			assert.Empty(t, result.Diagnostics)
		})

		t.Run("declared loop variables live in the loop scope", func(t *testing.T) {
			result := analyzeForTest(t, "for (let k in {}) {\n\tprint(k);\n}\nprint(k);")

			require.Len(t, result.Diagnostics, 1)
			assert.Equal(t, UndefinedVariableCode, result.Diagnostics[0].Code)
			assert.Equal(t, "undefined variable 'k'", result.Diagnostics[0].Message)
		})

		t.Run("unused declared value variable", func(t *testing.T) {
			result := analyzeForTest(t, "for (let k, v in {}) {\n\tprint(k);\n}")

			require.Len(t, result.Diagnostics, 1)
			assert.Equal(t, UnusedVariableCode, result.Diagnostics[0].Code)
			assert.Equal(t, "'v' is declared but never used", result.Diagnostics[0].Message)
		})
	})

	t.Run("alternative block syntax resolves like braced blocks", func(t *testing.T) {
		result := analyzeForTest(t, "let total = 0;\nfor (let i in [1, 2, 3]):\n\ttotal += i;\nendfor\nprint(total);")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("object keys are not references", func(t *testing.T) {
		result := analyzeForTest(t, "let opts = { trace: 1, level: 2 };\nprint(opts);")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("shorthand property values are references", func(t *testing.T) {
		result := analyzeForTest(t, "let ready = 1;\nlet opts = { ready };\nprint(opts);")

		assert.Empty(t, result.Diagnostics)

		missing := analyzeForTest(t, "let opts = { absent };\nprint(opts);")
		require.Len(t, missing.Diagnostics, 1)
		assert.Equal(t, UndefinedVariableCode, missing.Diagnostics[0].Code)
		assert.Equal(t, "undefined variable 'absent'", missing.Diagnostics[0].Message)
	})

	t.Run("member names are not references", func(t *testing.T) {
		result := analyzeForTest(t, "let box = { n: 1 };\nprint(box.n);")

		assert.Empty(t, result.Diagnostics)
	})
}

func TestAnalyzeCalls(t *testing.T) {

	t.Run("arity", func(t *testing.T) {

		t.Run("too few arguments", func(t *testing.T) {
			result := analyzeForTest(t, "uc();")

			require.Len(t, result.Diagnostics, 1)
			diag := result.Diagnostics[0]
			assert.Equal(t, ErrorSeverity, diag.Severity)
			assert.Equal(t, ArityCode, diag.Code)
			assert.Equal(t, "function 'uc' expects 1 argument(s), got 0", diag.Message)
			assert.Equal(t, parse.NodeSpan{Start: 0, End: 4}, diag.Span)
		})

		t.Run("too many arguments", func(t *testing.T) {
			result := analyzeForTest(t, "uc(\"a\", \"b\");")

			require.Len(t, result.Diagnostics, 1)
			assert.Equal(t, ArityCode, result.Diagnostics[0].Code)
			assert.Equal(t, "function 'uc' expects 1 argument(s), got 2", result.Diagnostics[0].Message)
		})

		t.Run("compatible call", func(t *testing.T) {
			result := analyzeForTest(t, "uc(\"a\");")

			assert.Empty(t, result.Diagnostics)
		})

		t.Run("range message", func(t *testing.T) {
			result := analyzeForTest(t, "signal(1, 2, 3);")

			require.Len(t, result.Diagnostics, 1)
			assert.Equal(t, "function 'signal' expects between 1 and 2 arguments, got 3", result.Diagnostics[0].Message)
		})

		t.Run("a spread argument disables the check", func(t *testing.T) {
			result := analyzeForTest(t, "let args = [1, 2, 3, 4];\nsignal(...args);")

			assert.Empty(t, result.Diagnostics)
		})

		t.Run("user functions accept missing arguments but not extras", func(t *testing.T) {
			result := analyzeForTest(t, "function greet(name) {\n\treturn name;\n}\ngreet();\ngreet(1, 2);")

			require.Len(t, result.Diagnostics, 1)
			assert.Equal(t, ArityCode, result.Diagnostics[0].Code)
			assert.Equal(t, "function 'greet' expects at most 1 argument(s), got 2", result.Diagnostics[0].Message)
		})

		t.Run("rest parameters lift the upper bound", func(t *testing.T) {
			result := analyzeForTest(t, "function join(sep, ...parts) {\n\treturn parts;\n}\njoin(\",\", 1, 2, 3, 4, 5);")

			assert.Empty(t, result.Diagnostics)
		})
	})

	t.Run("argument types", func(t *testing.T) {

		t.Run("incompatible literal argument", func(t *testing.T) {
			result := analyzeForTest(t, "uc(1);")

			require.Len(t, result.Diagnostics, 1)
			diag := result.Diagnostics[0]
			assert.Equal(t, ErrorSeverity, diag.Severity)
			assert.Equal(t, ArgumentTypeCode, diag.Code)
			assert.Equal(t, "argument 1 should be of type string, got integer", diag.Message)
		})

		t.Run("numeric constraint", func(t *testing.T) {
			assert.Empty(t, analyzeForTest(t, "sqrt(2);").Diagnostics)
			assert.Empty(t, analyzeForTest(t, "sqrt(2.5);").Diagnostics)

			result := analyzeForTest(t, "sqrt(\"two\");")
			require.Len(t, result.Diagnostics, 1)
			assert.Equal(t, "argument 1 should be of type numeric, got string", result.Diagnostics[0].Message)
		})

		t.Run("unknown arguments are always accepted", func(t *testing.T) {
			result := analyzeForTest(t, "function wrap(s) {\n\treturn uc(s);\n}\nwrap(\"x\");")

			assert.Empty(t, result.Diagnostics)
		})

		t.Run("a compatible union member is enough", func(t *testing.T) {
			result := analyzeForTest(t, "let text = 1 ? \"a\" : null;\nuc(text);")

			assert.Empty(t, result.Diagnostics)
		})
	})
}

func TestAnalyzeTypes(t *testing.T) {

	t.Run("inferred declaration types", func(t *testing.T) {
		cases := []struct {
			name     string
			code     string
			variable string
			expected string
		}{
			{"integer literal", "let v = 1;", "v", "integer"},
			{"hex literal", "let v = 0x1F;", "v", "integer"},
			{"double literal", "let v = 1.5;", "v", "double"},
			{"string literal", "let v = \"s\";", "v", "string"},
			{"template literal", "let v = `n=${1}`;", "v", "string"},
			{"boolean literal", "let v = true;", "v", "boolean"},
			{"null literal", "let v = null;", "v", "null"},
			{"array literal", "let v = [1];", "v", "array"},
			{"object literal", "let v = {};", "v", "object"},
			{"regex literal", "let v = /ab/g;", "v", "object"},
			{"function expression", "let v = function () {\n\treturn 1;\n};", "v", "function"},
			{"missing initializer", "let v;", "v", "null"},
			{"integer arithmetic", "let v = 1 + 2 * 3;", "v", "integer"},
			{"integer division stays integer", "let v = 7 / 2;", "v", "integer"},
			{"double operand spreads", "let v = 1 + 2.5;", "v", "double"},
			{"string concatenation", "let v = \"n=\" + 1;", "v", "string"},
			{"comparison", "let v = 1 < 2;", "v", "boolean"},
			{"equality", "let v = 1 == 2;", "v", "boolean"},
			{"bitwise", "let v = 1 | 2;", "v", "integer"},
			{"shift", "let v = 1 << 4;", "v", "integer"},
			{"negation", "let v = !0;", "v", "boolean"},
			{"unary minus keeps the operand type", "let v = -2.5;", "v", "double"},
			{"bitwise not", "let v = ~1;", "v", "integer"},
			{"logical union", "let v = 1 || \"fallback\";", "v", "integer | string"},
			{"conditional union", "let v = 1 ? 2 : 3.5;", "v", "integer | double"},
			{"builtin call", "let v = sqrt(2);", "v", "double"},
			{"builtin union return", "let v = uc(\"a\");", "v", "string | null"},
			{"sequence value", "let v = (1, \"s\");", "v", "string"},
			{"exponent", "let v = 2 ** 0.5;", "v", "double"},
		}

		for _, testCase := range cases {
			t.Run(testCase.name, func(t *testing.T) {
				result := analyzeForTest(t, testCase.code)

				assert.Empty(t, result.Diagnostics)
				sym := globalSymbol(t, result, testCase.variable)
				assert.Equal(t, testCase.expected, sym.Type.String())
			})
		}
	})

	t.Run("return type inference", func(t *testing.T) {

		t.Run("unions all return arms", func(t *testing.T) {
			result := analyzeForTest(t, "function describe(n) {\n\tif (n > 0) {\n\t\treturn \"positive\";\n\t}\n\treturn null;\n}\nlet label = describe(1);")

			assert.Empty(t, result.Diagnostics)
			sym := globalSymbol(t, result, "label")
			assert.True(t, sym.Type.Equal(NewType(StringType, NullType)), "got %s", sym.Type)
			assert.Equal(t, "string | null", sym.Type.String())
		})

		t.Run("an unknown arm stays in the union", func(t *testing.T) {
			result := analyzeForTest(t, "function pick(v) {\n\tif (v) {\n\t\treturn \"chosen\";\n\t}\n\treturn v.field;\n}\nlet choice = pick(0);")

			assert.Empty(t, result.Diagnostics)
			sym := globalSymbol(t, result, "choice")
			assert.True(t, sym.Type.Contains(StringType))
			assert.True(t, sym.Type.ContainsUnknown())
			assert.False(t, sym.Type.IsUnknown())
			assert.Len(t, sym.Type.Members(), 2)
		})

		t.Run("no return means null", func(t *testing.T) {
			result := analyzeForTest(t, "function noop() {\n}\nlet r = noop();")

			assert.Empty(t, result.Diagnostics)
			assert.Equal(t, "null", globalSymbol(t, result, "r").Type.String())
		})

		t.Run("bare return means null", func(t *testing.T) {
			result := analyzeForTest(t, "function stop(n) {\n\tif (n) {\n\t\treturn;\n\t}\n\treturn;\n}\nlet r = stop(1);")

			assert.Empty(t, result.Diagnostics)
			assert.Equal(t, "null", globalSymbol(t, result, "r").Type.String())
		})

		t.Run("arrow expression bodies", func(t *testing.T) {
			result := analyzeForTest(t, "let shout = (s) => s + \"!\";\nlet r = shout(\"hey\");")

			assert.Empty(t, result.Diagnostics)
			assert.Equal(t, "string", globalSymbol(t, result, "r").Type.String())
		})

		t.Run("nested functions do not leak their returns", func(t *testing.T) {
			result := analyzeForTest(t, "function make() {\n\tlet f = () => \"inner\";\n\tprint(f());\n\treturn 1;\n}\nlet r = make();")

			assert.Empty(t, result.Diagnostics)
			assert.Equal(t, "integer", globalSymbol(t, result, "r").Type.String())
		})

		t.Run("recursion falls back to unknown for the recursive arm", func(t *testing.T) {
			result := analyzeForTest(t, "function countdown(n) {\n\tif (n > 0) {\n\t\treturn countdown(n - 1);\n\t}\n\treturn 0;\n}\nlet r = countdown(3);")

			assert.Empty(t, result.Diagnostics)
			sym := globalSymbol(t, result, "r")
			assert.True(t, sym.Type.Contains(IntegerType))
			assert.True(t, sym.Type.ContainsUnknown())
		})

		t.Run("computed on demand for hover", func(t *testing.T) {
			result := analyzeForTest(t, "let greeting = \"hi\";\nfunction shout(msg) {\n\treturn greeting + msg;\n}\nshout(greeting);")

			assert.Empty(t, result.Diagnostics)
			sym := globalSymbol(t, result, "shout")
			assert.Equal(t, "string", result.ReturnTypeOf(sym).String())
		})
	})

	t.Run("assignments widen variable types", func(t *testing.T) {
		result := analyzeForTest(t, "let v = 1;\nv = \"s\";")

		assert.Empty(t, result.Diagnostics)
		sym := globalSymbol(t, result, "v")
		assert.True(t, sym.Type.Equal(NewType(IntegerType, StringType)), "got %s", sym.Type)
	})

	t.Run("assigning to a constant", func(t *testing.T) {

		t.Run("plain assignment", func(t *testing.T) {
			result := analyzeForTest(t, "const limit = 10;\nlimit = 20;")

			require.Len(t, result.Diagnostics, 1)
			diag := result.Diagnostics[0]
			assert.Equal(t, ErrorSeverity, diag.Severity)
			assert.Equal(t, ConstAssignmentCode, diag.Code)
			assert.Equal(t, "cannot assign to constant 'limit'", diag.Message)
		})

		t.Run("compound assignment", func(t *testing.T) {
			result := analyzeForTest(t, "const prefix = \"a\";\nprefix += \"b\";")

			require.Len(t, result.Diagnostics, 1)
			assert.Equal(t, ConstAssignmentCode, result.Diagnostics[0].Code)
		})

		t.Run("increment", func(t *testing.T) {
			result := analyzeForTest(t, "const n = 1;\nn++;")

			require.Len(t, result.Diagnostics, 1)
			assert.Equal(t, ConstAssignmentCode, result.Diagnostics[0].Code)
		})
	})

	t.Run("property types", func(t *testing.T) {

		t.Run("literal properties and later writes", func(t *testing.T) {
			result := analyzeForTest(t, "let box = { n: 1 };\nbox.s = \"x\";\nlet readBack = box.n;\nlet added = box.s;")

			assert.Empty(t, result.Diagnostics)
			assert.Equal(t, "integer", globalSymbol(t, result, "readBack").Type.String())
			assert.Equal(t, "string", globalSymbol(t, result, "added").Type.String())
		})

		t.Run("aliasing snapshots the property map", func(t *testing.T) {
			result := analyzeForTest(t, "let box = { n: 1 };\nlet copy = box;\nbox.n = \"later\";\nlet fromBox = box.n;\nlet fromCopy = copy.n;")

			assert.Empty(t, result.Diagnostics)
			assert.Equal(t, "string", globalSymbol(t, result, "fromBox").Type.String())
			assert.Equal(t, "integer", globalSymbol(t, result, "fromCopy").Type.String())
		})

		t.Run("unrecorded properties are unknown", func(t *testing.T) {
			result := analyzeForTest(t, "let empty = {};\nlet v = empty.missing;")

			assert.Empty(t, result.Diagnostics)
			assert.True(t, globalSymbol(t, result, "v").Type.IsUnknown())
		})
	})
}

func TestAnalyzeModules(t *testing.T) {

	t.Run("namespace import carries the module tag", func(t *testing.T) {
		result := analyzeForTest(t, "import * as fs from 'fs';\n\nlet f = fs.open(\"/etc/hosts\", \"r\");\nf.read(16);")

		assert.Empty(t, result.Diagnostics)
		assert.Equal(t, "fs.file", globalSymbol(t, result, "f").Type.String())
	})

	t.Run("member outside the allowlist", func(t *testing.T) {
		result := analyzeForTest(t, "import * as fs from 'fs';\n\nlet f = fs.open(\"/etc/hosts\", \"r\");\nf.frobnicate();")

		require.Len(t, result.Diagnostics, 1)
		diag := result.Diagnostics[0]
		assert.Equal(t, ErrorSeverity, diag.Severity)
		assert.Equal(t, UnknownMemberCode, diag.Code)
		assert.Equal(t, "property 'frobnicate' does not exist on type fs.file", diag.Message)
	})

	t.Run("directory handles reject file-only members", func(t *testing.T) {
		result := analyzeForTest(t, "import * as fs from 'fs';\n\nlet d = fs.opendir(\"/tmp\");\nd.read();\nd.write(\"x\");")

		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, UnknownMemberCode, result.Diagnostics[0].Code)
		assert.Equal(t, "property 'write' does not exist on type fs.dir", result.Diagnostics[0].Message)
	})

	t.Run("unknown members of the namespace itself", func(t *testing.T) {
		result := analyzeForTest(t, "import * as fs from 'fs';\n\nfs.chmod(\"/x\");")

		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, UnknownMemberCode, result.Diagnostics[0].Code)
		assert.Equal(t, "property 'chmod' does not exist on type fs", result.Diagnostics[0].Message)
	})

	t.Run("module function arity through the namespace", func(t *testing.T) {
		result := analyzeForTest(t, "import * as fs from 'fs';\n\nfs.open();")

		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, ArityCode, result.Diagnostics[0].Code)
		assert.Equal(t, "function 'open' expects between 1 and 3 arguments, got 0", result.Diagnostics[0].Message)
	})

	t.Run("named imports resolve to module signatures", func(t *testing.T) {
		result := analyzeForTest(t, "import { open } from 'fs';\n\nlet f = open(\"/etc/hosts\", \"r\");\nf.write(\"data\");")

		assert.Empty(t, result.Diagnostics)
		assert.Equal(t, "fs.file", globalSymbol(t, result, "f").Type.String())
	})

	t.Run("named import arity", func(t *testing.T) {
		result := analyzeForTest(t, "import { open } from 'fs';\n\nopen();")

		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, ArityCode, result.Diagnostics[0].Code)
	})

	t.Run("aliased named import", func(t *testing.T) {
		result := analyzeForTest(t, "import { open as fsOpen } from 'fs';\n\nlet f = fsOpen(\"/x\", \"r\");\nf.close();")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("unknown modules fail open", func(t *testing.T) {
		result := analyzeForTest(t, "import * as zlib from 'zlib';\n\nzlib.inflate(\"x\");")

		assert.Empty(t, result.Diagnostics)
	})

	t.Run("computed member accesses are not checked", func(t *testing.T) {
		result := analyzeForTest(t, "import * as fs from 'fs';\n\nlet f = fs.open(\"/x\", \"r\");\nlet method = f[\"anything\"];")

		assert.Empty(t, result.Diagnostics)
		assert.True(t, globalSymbol(t, result, "method").Type.IsUnknown())
	})
}

func TestAnalyzeDirectives(t *testing.T) {

	t.Run("errors on a disabled line become warnings", func(t *testing.T) {
		result := analyzeForTest(t, "let x = 1;\nlet x = 2; // ucode-disable-line")

		require.Len(t, result.Diagnostics, 1)
		diag := result.Diagnostics[0]
		assert.Equal(t, WarningSeverity, diag.Severity)
		assert.Equal(t, RedeclarationCode, diag.Code)
		assert.Equal(t, "'x' is already declared in this scope", diag.Message)
	})

	t.Run("parse errors are downgraded as well", func(t *testing.T) {
		result := analyzeForTest(t, "let ; // ucode-disable-line")

		require.NotEmpty(t, result.Diagnostics)
		for _, diag := range result.Diagnostics {
			assert.Equal(t, WarningSeverity, diag.Severity)
		}
	})

	t.Run("the directive only affects its own line", func(t *testing.T) {
		result := analyzeForTest(t, "let x = 1; // ucode-disable-line\nlet x = 2;")

		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, ErrorSeverity, result.Diagnostics[0].Severity)
		assert.Equal(t, RedeclarationCode, result.Diagnostics[0].Code)
	})
}

func TestAnalyzeRobustness(t *testing.T) {

	t.Run("any input produces a result", func(t *testing.T) {
		inputs := []string{
			"",
			"]",
			"let",
			"((((((((",
			"if (x {",
			"/* never closed",
			"`${",
			"let x = /",
			"\"",
			"export",
			"import",
			"a.b.c(((",
			"0x",
			"1 + + + 2",
			";;;;;",
			"function",
			"for (",
			"try {",
			"???",
			"let \x00 = 1;",
		}

		for _, input := range inputs {
			result := AnalyzeString("test", input, Options{Registry: testRegistry()})

			require.NotNil(t, result, "input %q", input)
			require.NotNil(t, result.Chunk, "input %q", input)
			require.NotNil(t, result.Table, "input %q", input)
			require.NotNil(t, result.Diagnostics, "input %q", input)
		}
	})

	t.Run("analysis is idempotent", func(t *testing.T) {
		inputs := []string{
			"let x = 1;\nlet x = 2;\nfoo(bar);",
			"if (x {",
			"import * as fs from 'fs';\nfs.chmod(\"/x\");",
		}

		for _, input := range inputs {
			first := AnalyzeString("test", input, Options{Registry: testRegistry()})
			second := AnalyzeString("test", input, Options{Registry: testRegistry()})

			assert.Equal(t, first.Diagnostics, second.Diagnostics, "input %q", input)
		}
	})

	t.Run("diagnostics are ordered by position", func(t *testing.T) {
		result := analyzeForTest(t, "uc();\nmystery;")

		require.Len(t, result.Diagnostics, 2)
		assert.Equal(t, ArityCode, result.Diagnostics[0].Code)
		assert.Equal(t, UndefinedVariableCode, result.Diagnostics[1].Code)
		assert.LessOrEqual(t, result.Diagnostics[0].Span.Start, result.Diagnostics[1].Span.Start)
	})

	t.Run("a nil registry disables signature checks", func(t *testing.T) {
		result := AnalyzeString("test", "somecall(1);", Options{})

		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, UndefinedFunctionCode, result.Diagnostics[0].Code)
	})

	t.Run("a realistic script analyzes cleanly", func(t *testing.T) {
		code := `import * as fs from 'fs';

const MAX_LINES = 100;

function readLines(path) {
	let handle = fs.open(path, "r");
	if (!handle) {
		return [];
	}

	let lines = [];
	let line = handle.read("line");
	while (line != null && length(lines) < MAX_LINES) {
		push(lines, line);
		line = handle.read("line");
	}
	handle.close();
	return lines;
}

for (let line in readLines("/etc/hosts")) {
	print(line);
}
`
		result := analyzeForTest(t, code)

		assert.Empty(t, result.Diagnostics)
	})
}

func TestSymbolTableQueries(t *testing.T) {
	code := "let greeting = \"hi\";\n\nfunction shout(msg) {\n\treturn greeting + msg;\n}\n\nshout(greeting);\n"
	result := analyzeForTest(t, code)
	require.Empty(t, result.Diagnostics)

	t.Run("definition of a reference", func(t *testing.T) {
		node, _ := parse.FindNodeAtOffset(result.Chunk, 55) //greeting inside shout
		ident, ok := node.(*parse.Identifier)
		require.True(t, ok)
		require.Equal(t, "greeting", ident.Name)

		sym, ok := result.Table.DefinitionOf(ident)
		require.True(t, ok)
		assert.Equal(t, parse.NodeSpan{Start: 4, End: 12}, sym.DeclSpan)
	})

	t.Run("lookup at an offset", func(t *testing.T) {
		sym, ok := result.Table.LookupAt(64) //msg inside the return expression
		require.True(t, ok)
		assert.Equal(t, "msg", sym.Name)
		assert.Equal(t, ParamSymbol, sym.Kind)
	})

	t.Run("scope at an offset", func(t *testing.T) {
		assert.Equal(t, FunctionScope, result.Table.ScopeAt(55).Kind)
		assert.Equal(t, GlobalScope, result.Table.ScopeAt(0).Kind)
	})

	t.Run("visible symbols, innermost first", func(t *testing.T) {
		var names []string
		for _, sym := range result.Table.VisibleAt(55) {
			names = append(names, sym.Name)
		}
		assert.Equal(t, []string{"msg", "greeting", "shout"}, names)
	})

	t.Run("symbols are in declaration order", func(t *testing.T) {
		var names []string
		for _, sym := range result.Table.Symbols() {
			names = append(names, sym.Name)
		}
		assert.Equal(t, []string{"greeting", "shout", "msg"}, names)
	})
}
