package main

import (
	"github.com/ProjectsTask/EasySwapKit/cmd"
)

// main 是程序的入口函数
// 执行 go run main.go card --conf ./config/config.toml ... 时从这里开始
func main() {
	cmd.Execute()
}
