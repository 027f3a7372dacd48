package main

import (
	"log"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cognisentinel/cognisentinel-go/internal/config"
	"github.com/cognisentinel/cognisentinel-go/pkg/logger"
	"go.uber.org/zap"
)

// 各进程启动后的固定等待时间
const (
	actionServerDelay = 3 * time.Second
	botServerDelay    = 5 * time.Second
	chatGatewayDelay  = 2 * time.Second
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("configs/launcher.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("=== CogniSentinel 启动器 ===")

	var processes []*exec.Cmd

	// 按固定顺序启动三个进程，每个进程之间等待固定时间
	steps := []struct {
		name  string
		cmd   []string
		delay time.Duration
	}{
		{"action-server", cfg.Launcher.ActionServerCmd, actionServerDelay},
		{"bot-server", cfg.Launcher.BotServerCmd, botServerDelay},
		{"chat-gateway", cfg.Launcher.ChatGatewayCmd, chatGatewayDelay},
	}

	for _, step := range steps {
		proc, err := startProcess(step.name, step.cmd, zapLogger)
		if err != nil {
			zapLogger.Error("进程启动失败", zap.String("name", step.name), zap.Error(err))
			stopAll(processes, zapLogger)
			os.Exit(1)
		}
		processes = append(processes, proc)
		time.Sleep(step.delay)
	}

	// 打开浏览器
	if err := openBrowser(cfg.Launcher.FrontendURL); err != nil {
		zapLogger.Warn("打开浏览器失败", zap.Error(err))
	} else {
		zapLogger.Info("浏览器已打开", zap.String("url", cfg.Launcher.FrontendURL))
	}

	zapLogger.Info("所有服务已启动，按 Ctrl+C 停止")

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("正在停止所有服务...")
	stopAll(processes, zapLogger)
	zapLogger.Info("所有服务已停止")
}

// startProcess 启动一个子进程
func startProcess(name string, command []string, zapLogger *zap.Logger) (*exec.Cmd, error) {
	if len(command) == 0 {
		return nil, os.ErrInvalid
	}

	zapLogger.Info("启动进程",
		zap.String("name", name),
		zap.Strings("cmd", command))

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	zapLogger.Info("进程已启动",
		zap.String("name", name),
		zap.Int("pid", cmd.Process.Pid))

	return cmd, nil
}

// stopAll 终止所有子进程
func stopAll(processes []*exec.Cmd, zapLogger *zap.Logger) {
	for _, proc := range processes {
		if proc.Process == nil {
			continue
		}
		if err := proc.Process.Signal(syscall.SIGTERM); err != nil {
			zapLogger.Warn("终止进程失败",
				zap.Int("pid", proc.Process.Pid),
				zap.Error(err))
			proc.Process.Kill()
		}
	}
	for _, proc := range processes {
		proc.Wait()
	}
}

// openBrowser 打开默认浏览器
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
