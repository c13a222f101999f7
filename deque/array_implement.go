package deque

// ArrDeque 基于环形数组实现
type ArrDeque[T any] struct {
	arr   []T
	start int // 头部元素下标
	size  int
}

// 工厂方法
func NewArrDeque[T any](capacity int) *ArrDeque[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ArrDeque[T]{
		arr: make([]T, capacity),
	}
}

func (ad *ArrDeque[T]) Size() int {
	return ad.size
}

func (ad *ArrDeque[T]) Capacity() int {
	return len(ad.arr)
}

func (ad *ArrDeque[T]) index(i int) int {
	return (ad.start + i) % len(ad.arr)
}

func (ad *ArrDeque[T]) Get(i int) T {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	return ad.arr[ad.index(i)]
}

func (ad *ArrDeque[T]) Traverse(f func(i int, item T)) {
	for i := 0; i < ad.size; i++ {
		f(i, ad.arr[ad.index(i)])
	}
}

// Slice copies the elements from head to tail.
func (ad *ArrDeque[T]) Slice() []T {
	out := make([]T, 0, ad.size)
	ad.Traverse(func(_ int, item T) {
		out = append(out, item)
	})
	return out
}

// 满时挤掉头部元素
func (ad *ArrDeque[T]) AddLast(item T) {
	if ad.IsFull() {
		ad.RemoveFirst()
	}
	ad.arr[ad.index(ad.size)] = item
	ad.size++
}

func (ad *ArrDeque[T]) RemoveLast() (T, bool) {
	var zero T
	if ad.IsEmpty() {
		return zero, false
	}
	i := ad.index(ad.size - 1)
	item := ad.arr[i]
	ad.arr[i] = zero
	ad.size--
	return item, true
}

func (ad *ArrDeque[T]) RemoveFirst() (T, bool) {
	var zero T
	if ad.IsEmpty() {
		return zero, false
	}
	item := ad.arr[ad.start]
	ad.arr[ad.start] = zero
	ad.start = (ad.start + 1) % len(ad.arr)
	ad.size--
	return item, true
}

func (ad *ArrDeque[T]) IsFull() bool {
	return ad.size == len(ad.arr)
}

func (ad *ArrDeque[T]) IsEmpty() bool {
	return ad.size == 0
}
