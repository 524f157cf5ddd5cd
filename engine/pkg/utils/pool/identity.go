package pool

import "reflect"

// identityOf 返回T的同一性比较函数,用于重复释放检测
//
// 只有引用类型才有同一性: 指针/chan 直接使用==, map/slice/func 比较底层指针
// 值类型(int/结构体/数组等)相等不代表是同一个对象,永远返回false
// 指向零大小类型的指针、nil引用、容量为0的切片可能共享同一地址,同样不做比较
// 接口类型按动态值的类型决定
func identityOf[T any]() func(a, b T) bool {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Pointer:
		if t.Elem().Size() == 0 {
			return noIdentity[T]
		}
		fallthrough
	case reflect.Chan, reflect.UnsafePointer, reflect.Map, reflect.Func, reflect.Slice:
		return func(a, b T) bool {
			return sameRef(reflect.ValueOf(a), reflect.ValueOf(b))
		}
	case reflect.Interface:
		return sameDynamic[T]
	}
	return noIdentity[T]
}

func noIdentity[T any](a, b T) bool {
	return false
}

func sameDynamic[T any](a, b T) bool {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !va.IsValid() || !vb.IsValid() {
		return false
	}
	if va.Type() != vb.Type() {
		return false
	}
	return sameRef(va, vb)
}

// sameRef 引用类型比较地址,其余类型没有同一性
func sameRef(va, vb reflect.Value) bool {
	switch va.Kind() {
	case reflect.Pointer:
		if va.Type().Elem().Size() == 0 {
			return false
		}
	case reflect.Slice:
		// 容量为0的切片都指向同一个零大小地址
		if va.Cap() == 0 || va.Len() != vb.Len() {
			return false
		}
	case reflect.Chan, reflect.UnsafePointer, reflect.Map, reflect.Func:
	default:
		return false
	}
	p := va.Pointer()
	return p != 0 && p == vb.Pointer()
}
