// 手动导入课程目录脚本
//
// 从JSON文件批量导入课程记录，向量留空，之后通过管理端触发回填。
//
// 用法: go run scripts/import_courses.go courses.json

package main

import (
	"encoding/json"
	"log"
	"os"

	"unicourse_backend/internal/config"
	"unicourse_backend/internal/repository"
	"unicourse_backend/internal/service"
	"unicourse_backend/pkg/database"
	"unicourse_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("用法: go run scripts/import_courses.go <courses.json>")
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("无法读取课程文件: %v", err)
	}

	var inputs []service.CourseInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		log.Fatalf("解析课程文件失败: %v", err)
	}

	catalog := service.NewCatalogService(repository.NewCourseRepository(db))

	count, err := catalog.Import(inputs)
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}

	log.Printf("导入完成，共 %d 条课程", count)
}
