package sorting

// Reference listings shown next to the animation. They are the plain,
// untraced versions of the producers in this package.

const bubbleListing = `// Bubble Sort
// Time: O(n²)  Space: O(1)
//
// 1. Compare adjacent elements and swap them if they are out of order
// 2. After each pass the largest unsorted element settles at the end
// 3. Repeat until no swaps are needed
func bubbleSort(arr []int) []int {
	a := slices.Clone(arr)
	n := len(a)

	// Outer loop: number of passes
	for i := 0; i < n; i++ {
		// Inner loop: compare and swap adjacent elements
		for j := 0; j < n-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
	return a
}`

const insertionListing = `// Insertion Sort
// Time: O(n²)  Space: O(1)
//
// 1. Start with the second element
// 2. Compare it with the previous elements
// 3. Insert it in the correct position
// 4. Repeat for all elements
func insertionSort(arr []int) []int {
	a := slices.Clone(arr)

	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1

		// Move elements greater than key one position ahead
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
	return a
}`

const shellListing = `// Shell Sort
// Time: O(n log² n) average  Space: O(1)
//
// 1. Start with a large gap between elements
// 2. Compare and shift elements that are far apart
// 3. Reduce the gap and repeat
// 4. Finish with an insertion sort at gap 1
func shellSort(arr []int) []int {
	a := slices.Clone(arr)
	n := len(a)

	for gap := n / 2; gap > 0; gap /= 2 {
		// Gapped insertion sort for this gap size
		for i := gap; i < n; i++ {
			tmp := a[i]
			j := i

			// Shift earlier gap-sorted elements up until the
			// correct location for a[i] is found
			for ; j >= gap && a[j-gap] > tmp; j -= gap {
				a[j] = a[j-gap]
			}
			a[j] = tmp
		}
	}
	return a
}`

const heapListing = `// Heap Sort
// Time: O(n log n)  Space: O(1)
//
// 1. Build a max heap from the input
// 2. The largest element is at the root
// 3. Swap it with the last element and shrink the heap
// 4. Heapify the root and repeat
func heapSort(arr []int) []int {
	a := slices.Clone(arr)
	n := len(a)

	var heapify func(n, i int)
	heapify = func(n, i int) {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < n && a[left] > a[largest] {
			largest = left
		}
		if right < n && a[right] > a[largest] {
			largest = right
		}
		if largest != i {
			a[i], a[largest] = a[largest], a[i]
			heapify(n, largest)
		}
	}

	// Build max heap
	for i := n/2 - 1; i >= 0; i-- {
		heapify(n, i)
	}

	// Extract elements one by one
	for i := n - 1; i > 0; i-- {
		a[0], a[i] = a[i], a[0]
		heapify(i, 0)
	}
	return a
}`

const mergeListing = `// Merge Sort
// Time: O(n log n)  Space: O(n)
//
// 1. Divide the array into two halves
// 2. Recursively sort each half
// 3. Merge the sorted halves
func mergeSort(arr []int) []int {
	a := slices.Clone(arr)

	merge := func(l, m, r int) {
		left := slices.Clone(a[l : m+1])
		right := slices.Clone(a[m+1 : r+1])

		i, j, k := 0, 0, l
		for i < len(left) && j < len(right) {
			if left[i] <= right[j] {
				a[k] = left[i]
				i++
			} else {
				a[k] = right[j]
				j++
			}
			k++
		}
		// Drain whatever is left in either half
		k += copy(a[k:], left[i:])
		copy(a[k:], right[j:])
	}

	var sort func(l, r int)
	sort = func(l, r int) {
		if l < r {
			m := (l + r) / 2
			sort(l, m)
			sort(m+1, r)
			merge(l, m, r)
		}
	}

	sort(0, len(a)-1)
	return a
}`

const quickListing = `// Quick Sort
// Time: O(n log n) average, O(n²) worst  Space: O(log n)
//
// 1. Choose the rightmost element as pivot
// 2. Partition the array around the pivot
// 3. Recursively sort both sides
func quickSort(arr []int) []int {
	a := slices.Clone(arr)

	partition := func(l, r int) int {
		pivot := a[r]
		i := l - 1
		for j := l; j < r; j++ {
			if a[j] <= pivot {
				i++
				a[i], a[j] = a[j], a[i]
			}
		}
		a[i+1], a[r] = a[r], a[i+1]
		return i + 1
	}

	var sort func(l, r int)
	sort = func(l, r int) {
		if l < r {
			p := partition(l, r)
			sort(l, p-1)
			sort(p+1, r)
		}
	}

	sort(0, len(a)-1)
	return a
}`

const countingListing = `// Counting Sort
// Time: O(n + k) where k is the value range  Space: O(n + k)
//
// 1. Count the frequency of each element
// 2. Turn the counts into cumulative end positions
// 3. Place elements right to left (keeps it stable)
// 4. Copy back to the original array
func countingSort(arr []int) []int {
	a := slices.Clone(arr)
	n := len(a)
	count := make(map[int]int)
	output := make([]int, n)

	for _, v := range a {
		count[v]++
	}

	sum := 0
	for _, v := range slices.Sorted(maps.Keys(count)) {
		sum += count[v]
		count[v] = sum
	}

	for i := n - 1; i >= 0; i-- {
		v := a[i]
		count[v]--
		output[count[v]] = v
	}

	copy(a, output)
	return a
}`
