package main

import "time"

// resolveSeed 0 表示每次启动使用不同的种子
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
