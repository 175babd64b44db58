package config

// 窗口与竞技场默认尺寸
// 竞技场尺寸每帧从前端查询，窗口缩放后会变化；这里只是启动值和查询失败时的兜底值
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)

// 默认数据文件路径（嵌入在二进制中，见根目录 embed.go）
const (
	DefaultGameConfigPath     = "data/game_config.yaml"
	DefaultResourceConfigPath = "data/resources.yaml"
)

// 音效资源ID
// 核心只发出播放请求，不关心结果
const (
	SoundBounce1   = "SOUND_BOUNCE_1"
	SoundBounce2   = "SOUND_BOUNCE_2"
	SoundPickup    = "SOUND_PICKUP"
	SoundExplosion = "SOUND_EXPLOSION"
)

// 精灵资源ID
const (
	SpritePlayer = "SPRITE_PLAYER"
	SpriteHazard = "SPRITE_HAZARD"
	SpritePickup = "SPRITE_PICKUP"
)

// 计时器名称
const (
	TimerHazardSpawn = "hazard_spawn"
	TimerPickupSpawn = "pickup_spawn"
)
