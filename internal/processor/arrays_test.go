package processor

import (
	"testing"
)

func TestArraySorting(t *testing.T) {
	runSortCases(t, []sortCase{
		{
			name: "records_by_string_key",
			input: `
const users = [
	/** tsorder: keep-sorted key="name" */
	{ name: "Charlie", age: 30 },
	{ name: "Alice", age: 25 },
	{ name: "Bob", age: 28 }
];`,
			want: `
const users = [
	/** tsorder: keep-sorted key="name" */
	{ name: "Alice", age: 25 },
	{ name: "Bob", age: 28 },
	{ name: "Charlie", age: 30 }
];`,
		},
		{
			name: "records_by_numeric_key",
			input: `
const users = [
	/** tsorder: keep-sorted key="age" */
	{ name: "Charlie", age: 30 },
	{ name: "Alice", age: 25 },
	{ name: "Bob", age: 8 }
];`,
			want: `
const users = [
	/** tsorder: keep-sorted key="age" */
	{ name: "Bob", age: 8 },
	{ name: "Alice", age: 25 },
	{ name: "Charlie", age: 30 }
];`,
		},
		{
			name: "tuples_by_index",
			input: `
const data = [
	/** tsorder: keep-sorted key="1" */
	["apple", 5, true],
	["banana", 2, false],
	["cherry", 8, true]
];`,
			want: `
const data = [
	/** tsorder: keep-sorted key="1" */
	["banana", 2, false],
	["apple", 5, true],
	["cherry", 8, true]
];`,
		},
		{
			name: "scalars",
			input: `
const numbers = [
	/** tsorder: keep-sorted */
	5, 2, 8, 1, 9
];`,
			want: `
const numbers = [
	/** tsorder: keep-sorted */
	1, 2, 5, 8, 9
];`,
		},
		{
			name: "numbers_by_value",
			input: `
const sizes = [
	/** tsorder: keep-sorted */
	100, 25, 8
];`,
			want: `
const sizes = [
	/** tsorder: keep-sorted */
	8, 25, 100
];`,
		},
		{
			name: "explicit_alphabetical",
			input: `
const sizes = [
	/** tsorder: keep-sorted type=alphabetical */
	2, 10, 1
];`,
			want: `
const sizes = [
	/** tsorder: keep-sorted type=alphabetical */
	1, 10, 2
];`,
		},
		{
			name: "descending",
			input: `
const sizes = [
	/** tsorder: keep-sorted order=desc */
	1, 10, 2
];`,
			want: `
const sizes = [
	/** tsorder: keep-sorted order=desc */
	10, 2, 1
];`,
		},
		{
			name: "strings",
			input: `
const fruits = [
	/** tsorder: keep-sorted */
	"banana", "apple", "cherry"
];`,
			want: `
const fruits = [
	/** tsorder: keep-sorted */
	"apple", "banana", "cherry"
];`,
		},
		{
			name: "mixed_values_by_text",
			input: `
const mixed = [
	/** tsorder: keep-sorted */
	"string",
	42,
	{ key: "object" },
	[1, 2, 3],
	true,
	null
];`,
			want: `
const mixed = [
	/** tsorder: keep-sorted */
	42,
	[1, 2, 3],
	null,
	"string",
	true,
	{ key: "object" }
];`,
		},
		{
			name: "missing_keys_last",
			input: `
const users = [
	/** tsorder: keep-sorted key="name" */
	{ name: "Alice", age: 25 },
	{ age: 30 },  // missing name
	{ name: "Bob", age: 28 },
	{ id: 123 }   // missing name and age
];`,
			want: `
const users = [
	/** tsorder: keep-sorted key="name" */
	{ name: "Alice", age: 25 },
	{ name: "Bob", age: 28 },
	{ age: 30 }, // missing name
	{ id: 123 }   // missing name and age
];`,
		},
		{
			name: "missing_keys_first_when_descending",
			input: `
const users = [
	/** tsorder: keep-sorted key="name" order=desc */
	{ name: "Alice" },
	{ age: 30 },
	{ name: "Bob" }
];`,
			want: `
const users = [
	/** tsorder: keep-sorted key="name" order=desc */
	{ age: 30 },
	{ name: "Bob" },
	{ name: "Alice" }
];`,
		},
		{
			name: "tuple_index_out_of_range",
			input: `
const data = [
	/** tsorder: keep-sorted key="3" */
	["a", "b"],       // no index 3
	["x", "y", "z", "w"],
	["m", "n", "o"]   // no index 3
];`,
			want: `
const data = [
	/** tsorder: keep-sorted key="3" */
	["x", "y", "z", "w"],
	["a", "b"], // no index 3
	["m", "n", "o"]   // no index 3
];`,
		},
		{
			name: "comments_travel_with_elements",
			input: `
const users = [
	/** tsorder: keep-sorted key="name" */
	// Charlie's data
	{
		name: "Charlie",
		age: 30,
		active: true
	},
	// Alice's data
	{ name: "Alice", age: 25, active: false },
	// Bob's data
	{
		name: "Bob",
		age: 28,
		active: true
	}
];`,
			want: `
const users = [
	/** tsorder: keep-sorted key="name" */
	// Alice's data
	{ name: "Alice", age: 25, active: false },
	// Bob's data
	{
		name: "Bob",
		age: 28,
		active: true
	},
	// Charlie's data
	{
		name: "Charlie",
		age: 30,
		active: true
	}
];`,
		},
		{
			name: "trailing_comma",
			input: `
const items = [
	/** tsorder: keep-sorted key="id" */
	{ id: 3, value: "three" },
	{ id: 1, value: "one" },
	{ id: 2, value: "two" },
];`,
			want: `
const items = [
	/** tsorder: keep-sorted key="id" */
	{ id: 1, value: "one" },
	{ id: 2, value: "two" },
	{ id: 3, value: "three" },
];`,
		},
		{
			name: "nested_key_path",
			input: `
const users = [
	/** tsorder: keep-sorted key="profile.firstName" */
	{ profile: { firstName: "Charlie", lastName: "Brown" } },
	{ profile: { firstName: "Alice", lastName: "Smith" } },
	{ profile: { firstName: "Bob", lastName: "Jones" } }
];`,
			want: `
const users = [
	/** tsorder: keep-sorted key="profile.firstName" */
	{ profile: { firstName: "Alice", lastName: "Smith" } },
	{ profile: { firstName: "Bob", lastName: "Jones" } },
	{ profile: { firstName: "Charlie", lastName: "Brown" } }
];`,
		},
		{
			name: "boolean_key",
			input: `
const items = [
	/** tsorder: keep-sorted key="active" */
	{ name: "Item1", active: true },
	{ name: "Item2", active: false },
	{ name: "Item3", active: true },
	{ name: "Item4", active: false }
];`,
			want: `
const items = [
	/** tsorder: keep-sorted key="active" */
	{ name: "Item2", active: false },
	{ name: "Item4", active: false },
	{ name: "Item1", active: true },
	{ name: "Item3", active: true }
];`,
		},
		{
			name: "duplicate_keys_keep_order",
			input: `
const dups = [
	/** tsorder: keep-sorted key="score" */
	{ name: "A", score: 10 },
	{ name: "B", score: 5 },
	{ name: "C", score: 10 },
	{ name: "D", score: 5 }
];`,
			want: `
const dups = [
	/** tsorder: keep-sorted key="score" */
	{ name: "B", score: 5 },
	{ name: "D", score: 5 },
	{ name: "A", score: 10 },
	{ name: "C", score: 10 }
];`,
		},
		{
			name: "sort_by_comment",
			input: `
const items = [
	/** tsorder: keep-sorted sort-by-comment */
	"x", // Zulu
	"y", // Alpha
	"z", // Mike
];`,
			want: `
const items = [
	/** tsorder: keep-sorted sort-by-comment */
	"y", // Alpha
	"z", // Mike
	"x", // Zulu
];`,
		},
		{
			name: "multiline_magic_comment",
			input: `
const tasks = [
	/**
	 * tsorder: keep-sorted
	 *   key="priority"
	 *   deprecated-at-end
	 */
	{ id: "b", priority: 2 },
	/** @deprecated */
	{ id: "a", priority: 1 },
	{ id: "c", priority: 3 }
];`,
			want: `
const tasks = [
	/**
	 * tsorder: keep-sorted
	 *   key="priority"
	 *   deprecated-at-end
	 */
	{ id: "b", priority: 2 },
	{ id: "c", priority: 3 },
	/** @deprecated */
	{ id: "a", priority: 1 }
];`,
		},
		{
			name: "already_sorted",
			input: `
const sorted = [
	/** tsorder: keep-sorted */
	1, 2, 3, 4, 5
];`,
		},
		{
			name: "empty",
			input: `
const empty = [
	/** tsorder: keep-sorted */
];`,
		},
		{
			name: "single_element",
			input: `
const single = [
	/** tsorder: keep-sorted */
	42
];`,
		},
	})
}
