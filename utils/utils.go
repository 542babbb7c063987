package utils

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Has 字段是否存在
func Has(s *structpb.Struct, key string) bool {
	_, ok := s.GetFields()[key]
	return ok
}

// String 读取字符串字段，缺失为空串
func String(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func Bool(s *structpb.Struct, key string) bool {
	return s.GetFields()[key].GetBoolValue()
}

func Int(s *structpb.Struct, key string) int {
	return int(s.GetFields()[key].GetNumberValue())
}

// Struct 读取嵌套对象，缺失为 nil
func Struct(s *structpb.Struct, key string) *structpb.Struct {
	return s.GetFields()[key].GetStructValue()
}

// List 将切片转换为 structpb 可接受的 []any
func List[T any](items []T, conv func(T) any) []any {
	res := make([]any, len(items))
	for i, item := range items {
		res[i] = conv(item)
	}
	return res
}
