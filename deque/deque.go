// Package deque 有界双端队列。
//
// 队列满时在尾部加入元素会挤掉头部最旧的元素，用于保存会话内最近的请求参数。
package deque

type Deque[T any] interface {
	// 队列的长度
	Size() int

	// 获取队列中对应下标的元素，0 为头部
	Get(i int) T

	// 正向遍历
	Traverse(f func(i int, item T))

	// 从头到尾复制出所有元素
	Slice() []T

	// 在队列结尾增加一个元素
	AddLast(item T)

	// 在队列结尾删除一个元素
	RemoveLast() (T, bool)

	// 在队列头部删除一个元素
	RemoveFirst() (T, bool)

	IsFull() bool

	IsEmpty() bool
}
