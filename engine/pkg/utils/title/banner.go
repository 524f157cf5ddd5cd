/*
 * Copyright (c) 2023. YR. All rights reserved
 */

// Package title
// 模块名: 启动标题
// 模块功能简介: 3D-ASCII风格的title
package title

var titleBase = `

        ███████╗███╗   ███╗██████╗ ███████╗██████╗     ██████╗  ██████╗  ██████╗ ██╗
        ██╔════╝████╗ ████║██╔══██╗██╔════╝██╔══██╗    ██╔══██╗██╔═══██╗██╔═══██╗██║
        █████╗  ██╔████╔██║██████╔╝█████╗  ██████╔╝    ██████╔╝██║   ██║██║   ██║██║
        ██╔══╝  ██║╚██╔╝██║██╔══██╗██╔══╝  ██╔══██╗    ██╔═══╝ ██║   ██║██║   ██║██║
        ███████╗██║ ╚═╝ ██║██████╔╝███████╗██║  ██║    ██║     ╚██████╔╝╚██████╔╝███████╗
        ╚══════╝╚═╝     ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝    ╚═╝      ╚═════╝  ╚═════╝ ╚══════╝
         %s • %s: %s

`
