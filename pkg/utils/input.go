package utils

// InputSnapshot 存储当前帧的离散输入信号
// 由前端（Ebiten 键盘、终端按键、脚本驾驶员）每帧采集一次，核心只读取不修改
type InputSnapshot struct {
	MoveUp    bool
	MoveDown  bool
	MoveLeft  bool
	MoveRight bool

	Confirm bool // 进入游戏（G / Enter）
	Cancel  bool // 返回主菜单（M）
	Pause   bool // 切换暂停（Space）
	Exit    bool // 退出（Escape）
}

// Direction 将方向键状态转换为移动意图
// 返回单位向量或零向量；斜向输入会被归一化，保证斜向速度等于轴向速度。
// 屏幕坐标系 Y 轴向下，因此 MoveUp 对应 -Y。
func (in InputSnapshot) Direction() Vec2 {
	var d Vec2
	if in.MoveLeft {
		d.X -= 1
	}
	if in.MoveRight {
		d.X += 1
	}
	if in.MoveUp {
		d.Y -= 1
	}
	if in.MoveDown {
		d.Y += 1
	}
	return d.Normalize()
}

// HasCommand 是否包含任何非移动的命令信号
func (in InputSnapshot) HasCommand() bool {
	return in.Confirm || in.Cancel || in.Pause || in.Exit
}

// InputFromDirection 把任意方向量化成方向键状态
// 与对应轴夹角较小（分量超过 1/3）的方向才按下；零向量不按任何键
func InputFromDirection(dir Vec2) InputSnapshot {
	d := dir.Normalize()
	const threshold = 1.0 / 3
	return InputSnapshot{
		MoveUp:    d.Y < -threshold,
		MoveDown:  d.Y > threshold,
		MoveLeft:  d.X < -threshold,
		MoveRight: d.X > threshold,
	}
}
