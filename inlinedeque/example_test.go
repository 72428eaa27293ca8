package inlinedeque

import "fmt"

// Example demonstrates basic deque usage.
func Example() {
	// Capacity bounds total insertions over the deque's lifetime.
	d := New[int](4)
	defer d.Release() // drop the whole arena at once

	d.Append(1)
	d.Append(2)
	d.Prepend(0)
	d.Append(3)

	fmt.Println(d)
	fmt.Println("len:", d.Len())

	v, _ := d.RemoveFirst()
	fmt.Println("front:", v)
	fmt.Println(d)

	// Output:
	// [0, 1, 2, 3]
	// len: 4
	// front: 0
	// [1, 2, 3]
}

// ExampleInlineDeque_RemoveAt demonstrates O(1) removal from the middle
// via a node handle.
func ExampleInlineDeque_RemoveAt() {
	d := New[string](3)
	defer d.Release()

	d.Append("a")
	n := d.Append("b")
	d.Append("c")

	fmt.Println(d.RemoveAt(n))
	fmt.Println(d)

	// Output:
	// b
	// [a, c]
}

// ExampleInlineDeque_Next demonstrates pull-style consumption, which
// drains the deque from the back.
func ExampleInlineDeque_Next() {
	d := FromSlice([]int{1, 2, 3})
	defer d.Release()

	for {
		v, ok := d.Next()
		if !ok {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 3
	// 2
	// 1
}

// ExampleInlineDeque_Metrics demonstrates arena introspection. Removed
// slots stay allocated: the frontier never moves backwards.
func ExampleInlineDeque_Metrics() {
	d := New[int](4)
	defer d.Release()

	d.Append(1)
	n := d.Append(2)
	d.Append(3)
	d.RemoveAt(n)

	m := d.Metrics()
	fmt.Println("capacity:", m.Capacity)
	fmt.Println("stored:", m.Stored)
	fmt.Println("linked:", m.Linked)
	fmt.Println("detached:", m.Detached)
	fmt.Printf("utilization: %.0f%%\n", m.Utilization*100)

	// Output:
	// capacity: 4
	// stored: 3
	// linked: 2
	// detached: 1
	// utilization: 75%
}
