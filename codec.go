package main

import (
	"encoding/json"
)

// connect的JSON编解码器，消息为普通的Go结构体而非protobuf
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	// 空请求体视为所有字段取零值
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
